package step

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"time"
)

// spliceMarker is the scaffold line replaced by the generated part
// records when the document is written.
const spliceMarker = "/* Part Specification */"

// Scaffold record ids referenced by generated geometry.
const (
	contextID   = 45 // geometric representation context
	rootShapeID = 48 // root SHAPE_REPRESENTATION
)

// Document is the fixed CONFIG_CONTROL_DESIGN envelope: file header,
// product and approval boilerplate, unit and context records, and the
// root shape representation. Part records generated for one run are
// spliced between its header and footer at a single marker position.
type Document struct {
	lines  []string
	splice int // index of the marker line
	lastID int // highest id used by the scaffold
}

var recordIDPattern = regexp.MustCompile(`^#(\d+)=`)

// lineID extracts the record id from a scaffold line, 0 if the line is
// not a record.
func lineID(line string) int {
	m := recordIDPattern.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return id
}

// NewDocument builds the scaffold for an output file with the given
// name. The creation date records are stamped from at.
func NewDocument(name string, at time.Time) *Document {
	lines := []string{
		"ISO-10303-21;",
		"HEADER;",
		"FILE_DESCRIPTION(('none'),'2;1');",
		"",
		"FILE_NAME('" + name + "','none',('none'),('none'),'none','none','none');",
		"",
		"FILE_SCHEMA(('CONFIG_CONTROL_DESIGN'));",
		"",
		"ENDSEC;",
		"DATA;",
		"#1=APPLICATION_CONTEXT('configuration controlled 3D design of mechanical parts and assemblies') ;",
		"#2=MECHANICAL_CONTEXT(' ',#1,'mechanical') ;",
		"#3=DESIGN_CONTEXT(' ',#1,'design') ;",
		"#4=APPLICATION_PROTOCOL_DEFINITION('international standard','config_control_design',1994,#1) ;",
		"#5=PRODUCT('Part1','','',(#2)) ;",
		"#6=PRODUCT_DEFINITION_FORMATION_WITH_SPECIFIED_SOURCE('',' ',#5,.NOT_KNOWN.) ;",
		"#7=PRODUCT_CATEGORY('part',$) ;",
		"#8=PRODUCT_RELATED_PRODUCT_CATEGORY('detail',$,(#5)) ;",
		"#9=PRODUCT_CATEGORY_RELATIONSHIP(' ',' ',#7,#8) ;",
		"#10=COORDINATED_UNIVERSAL_TIME_OFFSET(0,0,.AHEAD.) ;",
		"#11=CALENDAR_DATE(" + strconv.Itoa(at.Year()) + "," + strconv.Itoa(int(at.Month())) + "," + strconv.Itoa(at.Day()) + ") ;",
		"#12=LOCAL_TIME(" + strconv.Itoa(at.Hour()) + "," + strconv.Itoa(at.Minute()) + "," + strconv.Itoa(at.Second()) + ".,#10) ;",
		"#13=DATE_AND_TIME(#11,#12) ;",
		"#14=PRODUCT_DEFINITION('',' ',#6,#3) ;",
		"#15=SECURITY_CLASSIFICATION_LEVEL('unclassified') ;",
		"#16=SECURITY_CLASSIFICATION(' ',' ',#15) ;",
		"#17=DATE_TIME_ROLE('classification_date') ;",
		"#18=CC_DESIGN_DATE_AND_TIME_ASSIGNMENT(#13,#17,(#16)) ;",
		"#19=APPROVAL_ROLE('APPROVER') ;",
		"#20=APPROVAL_STATUS('not_yet_approved') ;",
		"#21=APPROVAL(#20,' ') ;",
		"#22=PERSON(' ',' ',' ',$,$,$) ;",
		"#23=ORGANIZATION(' ',' ',' ') ;",
		"#24=PERSONAL_ADDRESS(' ',' ',' ',' ',' ',' ',' ',' ',' ',' ',' ',' ',(#22),' ') ;",
		"#25=PERSON_AND_ORGANIZATION(#22,#23) ;",
		"#26=PERSON_AND_ORGANIZATION_ROLE('classification_officer') ;",
		"#27=CC_DESIGN_PERSON_AND_ORGANIZATION_ASSIGNMENT(#25,#26,(#16)) ;",
		"#28=DATE_TIME_ROLE('creation_date') ;",
		"#29=CC_DESIGN_DATE_AND_TIME_ASSIGNMENT(#13,#28,(#14)) ;",
		"#30=CC_DESIGN_APPROVAL(#21,(#16,#6,#14)) ;",
		"#31=APPROVAL_PERSON_ORGANIZATION(#25,#21,#19) ;",
		"#32=APPROVAL_DATE_TIME(#13,#21) ;",
		"#33=CC_DESIGN_PERSON_AND_ORGANIZATION_ASSIGNMENT(#25,#34,(#6)) ;",
		"#34=PERSON_AND_ORGANIZATION_ROLE('design_supplier') ;",
		"#35=CC_DESIGN_PERSON_AND_ORGANIZATION_ASSIGNMENT(#25,#36,(#6,#14)) ;",
		"#36=PERSON_AND_ORGANIZATION_ROLE('creator') ;",
		"#37=CC_DESIGN_PERSON_AND_ORGANIZATION_ASSIGNMENT(#25,#38,(#5)) ;",
		"#38=PERSON_AND_ORGANIZATION_ROLE('design_owner') ;",
		"#39=CC_DESIGN_SECURITY_CLASSIFICATION(#16,(#6)) ;",
		"",
		"#40=PRODUCT_DEFINITION_SHAPE(' ',' ',#14) ;",
		"#41=(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.)) ;",
		"#42=(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.)) ;",
		"#43=(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.)SOLID_ANGLE_UNIT()) ;",
		"#44=UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(0.005),#41,'distance_accuracy_value','CONFUSED CURVE UNCERTAINTY') ;",
		"#45=(GEOMETRIC_REPRESENTATION_CONTEXT(3)GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((#44))GLOBAL_UNIT_ASSIGNED_CONTEXT((#41,#42,#43))REPRESENTATION_CONTEXT(' ',' ')) ;",
		"",
		"#46=CARTESIAN_POINT(' ',(0.,0.,0.)) ;",
		"#47=AXIS2_PLACEMENT_3D(' ',#46,$,$) ;",
		"#48=SHAPE_REPRESENTATION(' ',(#47),#45) ;",
		"#49=SHAPE_DEFINITION_REPRESENTATION(#40,#48) ;",
		"",
		spliceMarker,
		"",
		"ENDSEC;",
		"END-ISO-10303-21;",
	}

	d := &Document{lines: lines, splice: -1}
	for i, line := range lines {
		if line == spliceMarker {
			d.splice = i
		}
		if id := lineID(line); id > d.lastID {
			d.lastID = id
		}
	}
	return d
}

// LastID returns the highest record id the scaffold uses. Generated
// records continue numbering at LastID()+1.
func (d *Document) LastID() int { return d.lastID }

// ContextID returns the geometric representation context record id.
func (d *Document) ContextID() int { return contextID }

// RootShapeID returns the root shape representation record id.
func (d *Document) RootShapeID() int { return rootShapeID }

// WriteTo writes the complete document with records spliced in place of
// the marker line. Every line is newline-terminated.
func (d *Document) WriteTo(w io.Writer, records []Record) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64

	write := func(line string) error {
		c, err := bw.WriteString(line)
		n += int64(c)
		if err != nil {
			return err
		}
		err = bw.WriteByte('\n')
		if err == nil {
			n++
		}
		return err
	}

	for i, line := range d.lines {
		if i == d.splice {
			for _, rec := range records {
				if err := write(rec.Text()); err != nil {
					return n, err
				}
			}
			continue
		}
		if err := write(line); err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
