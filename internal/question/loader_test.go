package question

import (
	"strings"
	"testing"
)

func TestParseCommaDelimited(t *testing.T) {
	src := `question,subject,use,correct,responseA,responseB,responseC,responseD,remark
What is 2+2?,math,exam,B,3,4,5,6,easy one
"Pick primes","math,logic","quiz,exam","A,B",2,3,4,,
`
	qs, err := Parse(strings.NewReader(src), ',')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("len = %d, want 2", len(qs))
	}

	q := qs[0]
	if q.Question != "What is 2+2?" || q.ResponseD != "6" || q.Remark != "easy one" {
		t.Fatalf("first row parsed wrong: %+v", q)
	}
	if len(q.Subject) != 1 || q.Subject[0] != "math" {
		t.Fatalf("subject = %v", q.Subject)
	}

	q = qs[1]
	if got := q.SubjectCell(); got != "math,logic" {
		t.Fatalf("multi-value subject cell = %q", got)
	}
	if got := q.UseValue(); got != "quiz,exam" {
		t.Fatalf("use cell = %q", got)
	}
	if got := q.CorrectCell(); got != "A,B" {
		t.Fatalf("correct cell = %q", got)
	}
	if q.ResponseD != "" || q.Remark != "" {
		t.Fatalf("absent optionals must be empty, got %q %q", q.ResponseD, q.Remark)
	}
}

func TestParseSemicolonDelimited(t *testing.T) {
	src := `question;subject;use;correct;responseA;responseB;responseC;responseD;remark
Capital of France?;geography,europe;quiz;A;Paris;Lyon;Nice;;
`
	qs, err := Parse(strings.NewReader(src), ';')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("len = %d, want 1", len(qs))
	}
	q := qs[0]
	// With a semicolon row delimiter the multi-value cell needs no quoting.
	if len(q.Subject) != 2 || q.Subject[0] != "geography" || q.Subject[1] != "europe" {
		t.Fatalf("subject = %v", q.Subject)
	}
	if q.ResponseA != "Paris" || q.ResponseD != "" {
		t.Fatalf("responses parsed wrong: %+v", q)
	}
}

func TestParseColumnOrderIndependent(t *testing.T) {
	src := `responseA,responseB,responseC,question,subject,use
yes,no,maybe,Is order free?,meta,quiz
`
	qs, err := Parse(strings.NewReader(src), ',')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if qs[0].Question != "Is order free?" || qs[0].ResponseC != "maybe" {
		t.Fatalf("reordered columns parsed wrong: %+v", qs[0])
	}
}

func TestParseRejectsMissingColumnAndMalformedRow(t *testing.T) {
	if _, err := Parse(strings.NewReader("question,subject,use\nx,math,quiz\n"), ','); err == nil {
		t.Fatal("missing responseA column accepted")
	}
	src := `question,subject,use,responseA,responseB,responseC
,math,quiz,a,b,c
`
	if _, err := Parse(strings.NewReader(src), ','); err == nil {
		t.Fatal("row without question text accepted")
	}
	if _, err := Parse(strings.NewReader(""), ','); err == nil {
		t.Fatal("empty file accepted")
	}
}
