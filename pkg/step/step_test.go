package step_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/evvaletov/stepfg/pkg/step"
)

func TestFormatReal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0."},
		{40, "40."},
		{-1, "-1."},
		{2.5, "2.5"},
		{0.005, "0.005"},
		{0.0001, "0.0001"},
		{12.25, "12.25"},
		{0.7071067811865476, "0.7071067811865476"},
		{1e21, "1.E+21"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := step.FormatReal(tt.in); got != tt.want {
				t.Errorf("FormatReal(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatCoord(t *testing.T) {
	if got := step.FormatCoord(0, 0, 1); got != "0.,0.,1." {
		t.Errorf("FormatCoord = %q, want %q", got, "0.,0.,1.")
	}
	if got := step.FormatCoord(2, 1.5, -20); got != "2.,1.5,-20." {
		t.Errorf("FormatCoord = %q, want %q", got, "2.,1.5,-20.")
	}
}

func TestBoolAndRefs(t *testing.T) {
	if step.Bool(true) != ".T." || step.Bool(false) != ".F." {
		t.Error("Bool literals wrong")
	}
	if got := step.Ref(52); got != "#52" {
		t.Errorf("Ref = %q", got)
	}
	if got := step.RefList([]int{3, 4, 5}); got != "#3,#4,#5" {
		t.Errorf("RefList = %q", got)
	}
	if got := step.RefList([]int{7}); got != "#7" {
		t.Errorf("RefList single = %q", got)
	}
}

func TestRecordText(t *testing.T) {
	r := step.Record{ID: 50, Type: "CARTESIAN_POINT", Params: "'Vertex',(0.,0.,0.)"}
	want := "#50=CARTESIAN_POINT('Vertex',(0.,0.,0.)) ;"
	if got := r.Text(); got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
	if got := r.Ref(); got != "#50" {
		t.Errorf("Ref = %q", got)
	}
}

func TestRegistryIntern(t *testing.T) {
	reg := step.NewRegistry(49)

	a := reg.Intern("CARTESIAN_POINT", "'Vertex',(0.,0.,0.)")
	if a != 50 {
		t.Fatalf("first id = %d, want 50", a)
	}

	// Identical payload collapses to the same id.
	if b := reg.Intern("CARTESIAN_POINT", "'Vertex',(0.,0.,0.)"); b != a {
		t.Errorf("duplicate intern = %d, want %d", b, a)
	}

	// A different label is a different record even at the same point.
	c := reg.Intern("CARTESIAN_POINT", "'Axis2P3D Location',(0.,0.,0.)")
	if c != 51 {
		t.Errorf("distinct label id = %d, want 51", c)
	}

	// Same params under a different type never collide.
	d := reg.Intern("DIRECTION", "'Axis2P3D Location',(0.,0.,0.)")
	if d != 52 {
		t.Errorf("distinct type id = %d, want 52", d)
	}

	recs := reg.Records()
	if len(recs) != 3 {
		t.Fatalf("Len = %d, want 3", len(recs))
	}
	for i, rec := range recs {
		if rec.ID != 50+i {
			t.Errorf("record %d has id %d, want %d", i, rec.ID, 50+i)
		}
	}
	if reg.NextID() != 53 {
		t.Errorf("NextID = %d, want 53", reg.NextID())
	}
}

func TestDocumentScaffold(t *testing.T) {
	at := time.Date(2017, time.March, 2, 14, 5, 9, 0, time.UTC)
	doc := step.NewDocument("part_out.stp", at)

	if doc.LastID() != 49 {
		t.Errorf("LastID = %d, want 49", doc.LastID())
	}
	if doc.ContextID() != 45 {
		t.Errorf("ContextID = %d, want 45", doc.ContextID())
	}
	if doc.RootShapeID() != 48 {
		t.Errorf("RootShapeID = %d, want 48", doc.RootShapeID())
	}
}

func TestDocumentWriteTo(t *testing.T) {
	at := time.Date(2017, time.March, 2, 14, 5, 9, 0, time.UTC)
	doc := step.NewDocument("part_out.stp", at)

	records := []step.Record{
		{ID: 50, Type: "CARTESIAN_POINT", Params: "'Vertex',(0.,0.,0.)"},
		{ID: 51, Type: "VERTEX_POINT", Params: "'',#50"},
	}

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf, records)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	out := buf.String()
	if int64(len(out)) != n {
		t.Errorf("reported %d bytes, wrote %d", n, len(out))
	}

	if !strings.HasPrefix(out, "ISO-10303-21;\n") {
		t.Error("missing ISO header line")
	}
	if !strings.HasSuffix(out, "END-ISO-10303-21;\n") {
		t.Error("missing footer line")
	}
	if strings.Contains(out, "/* Part Specification */") {
		t.Error("splice marker survived into output")
	}
	for _, want := range []string{
		"FILE_NAME('part_out.stp','none',('none'),('none'),'none','none','none');\n",
		"FILE_SCHEMA(('CONFIG_CONTROL_DESIGN'));\n",
		"#11=CALENDAR_DATE(2017,3,2) ;\n",
		"#12=LOCAL_TIME(14,5,9.,#10) ;\n",
		"#45=(GEOMETRIC_REPRESENTATION_CONTEXT(3)GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((#44))GLOBAL_UNIT_ASSIGNED_CONTEXT((#41,#42,#43))REPRESENTATION_CONTEXT(' ',' ')) ;\n",
		"#48=SHAPE_REPRESENTATION(' ',(#47),#45) ;\n",
		"#50=CARTESIAN_POINT('Vertex',(0.,0.,0.)) ;\n",
		"#51=VERTEX_POINT('',#50) ;\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Records land between the scaffold tail and the footer.
	shapeDef := strings.Index(out, "#49=SHAPE_DEFINITION_REPRESENTATION(#40,#48) ;")
	first := strings.Index(out, "#50=")
	endsec := strings.LastIndex(out, "ENDSEC;")
	if !(shapeDef < first && first < endsec) {
		t.Error("spliced records are not between scaffold tail and footer")
	}
}
