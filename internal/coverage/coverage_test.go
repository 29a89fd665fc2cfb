package coverage

import (
	"context"
	"errors"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCountsAddPrefixMimicsGrep(t *testing.T) {
	var c Counts
	for _, l := range []string{
		"chr1\t10\t.\tA\tG",
		"chr10\t10\t.\tA\tG",
		"chr12\t10\t.\tA\tG",
		"chr2\t1",
		"chr22\t1",
		"chr23\t1", // counts for chr2 only
		"chrX\t1",
		"#CHROM\tPOS",
		"1\t100",
	} {
		c.Add(l, Prefix)
	}
	want := map[int]int{1: 3, 10: 1, 12: 1, 2: 3, 22: 1}
	for n := 1; n <= Autosomes; n++ {
		if c[n] != want[n] {
			t.Fatalf("chr%d = %d, want %d", n, c[n], want[n])
		}
	}
}

func TestCountsAddExact(t *testing.T) {
	var c Counts
	for _, l := range []string{"chr1\t1", "chr10\t1", "chr1_random\t1", "chr1", "chr23\t1"} {
		c.Add(l, Exact)
	}
	if c[1] != 2 || c[10] != 1 {
		t.Fatalf("counts %v", c)
	}
}

func TestMissing(t *testing.T) {
	var c Counts
	for n := 1; n <= Autosomes; n++ {
		c[n] = 1
	}
	c[13], c[21] = 0, 0
	m := c.Missing()
	if len(m) != 2 || m[0] != 13 || m[1] != 21 {
		t.Fatalf("missing %v", m)
	}
}

func TestCountFileAndReport(t *testing.T) {
	dir := t.TempDir()
	vcf := filepath.Join(dir, "s.vcf")
	if err := os.WriteFile(vcf, []byte("##fileformat=VCFv4.2\n#CHROM\tPOS\nchr1\t5\nchr1\t6\nchr3\t7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := CountFile(vcf, Exact)
	if err != nil {
		t.Fatal(err)
	}
	if c[1] != 2 || c[3] != 1 || c[2] != 0 {
		t.Fatalf("counts %v", c)
	}
	rep := filepath.Join(dir, "s.chromosome_distribution.txt")
	if err := WriteReport(rep, c); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(rep)
	rows := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	if len(rows) != Autosomes+1 || rows[0] != "Chromosome\tVariant_Count" || rows[1] != "chr1\t2" || rows[22] != "chr22\t0" {
		t.Fatalf("report:\n%s", b)
	}
}

func TestAlertText(t *testing.T) {
	a := Alert{Sample: "S7", Missing: []int{4, 19}}
	if a.Subject() != "Missing Variant Calls Alert - Sample S7" {
		t.Fatalf("subject %q", a.Subject())
	}
	body := a.Body()
	if !strings.HasPrefix(body, "WARNING: Sample S7 is missing variant calls on the following chromosomes: 4,19\n") ||
		!strings.Contains(body, "check S7.chromosome_distribution.txt") {
		t.Fatalf("body %q", body)
	}
}

func TestSMTPNotifier(t *testing.T) {
	var gotTo []string
	var gotMsg string
	n := &SMTPNotifier{Addr: "relay:25", From: "a@x", To: []string{"b@x", "c@x"},
		send: func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotTo, gotMsg = to, string(msg)
			return nil
		}}
	if err := n.Notify(context.Background(), Alert{Sample: "S", Missing: []int{1}}); err != nil {
		t.Fatal(err)
	}
	if len(gotTo) != 2 || !strings.Contains(gotMsg, "Subject: Missing Variant Calls Alert - Sample S\r\n") {
		t.Fatalf("to=%v msg=%q", gotTo, gotMsg)
	}

	n.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }
	if err := n.Notify(context.Background(), Alert{Sample: "S"}); err == nil || !strings.Contains(err.Error(), "refused") {
		t.Fatalf("want send error, got %v", err)
	}

	n.To = nil
	if err := n.Notify(context.Background(), Alert{}); !errors.Is(err, ErrNoRecipients) {
		t.Fatalf("want ErrNoRecipients, got %v", err)
	}
}

func TestLoadMailConfig(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	if err := os.WriteFile(env, []byte("AUTOSOME_MAIL_TO=a@x, b@x\nAUTOSOME_SMTP_ADDR=mail:2525\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvMailTo, "")
	t.Setenv(EnvSMTPAddr, "")
	t.Setenv(EnvMailFrom, "")
	os.Unsetenv(EnvMailTo)
	os.Unsetenv(EnvSMTPAddr)
	os.Unsetenv(EnvMailFrom)

	cfg, loaded, err := LoadMailConfig(env)
	if err != nil || !loaded {
		t.Fatalf("load: %v %v", loaded, err)
	}
	if cfg.Addr != "mail:2525" || cfg.From != "autosome_check@server.com" || len(cfg.To) != 2 || cfg.To[1] != "b@x" {
		t.Fatalf("cfg %+v", cfg)
	}

	_, loaded, err = LoadMailConfig(filepath.Join(dir, "absent.env"))
	if err != nil || loaded {
		t.Fatalf("missing env file must be ignored: %v %v", loaded, err)
	}
}
