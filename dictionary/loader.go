package dictionary

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// rawValue mirrors one <value enum="..." description="..."/> child.
type rawValue struct {
	Enum        string `xml:"enum,attr"`
	Description string `xml:"description,attr"`
}

// rawField mirrors one top-level <fields><field .../></fields> entry.
type rawField struct {
	Number string     `xml:"number,attr"`
	Name   string     `xml:"name,attr"`
	Type   string     `xml:"type,attr"`
	Values []rawValue `xml:"value"`
}

// rawNode mirrors a <field>, <group>, or <component> reference as it
// appears inside a <header>, <trailer>, <message>, or <group> body.
// Children are captured with xml:",any" so a single slice preserves the
// document order of heterogeneous field/group/component siblings — Go's
// encoding/xml has no tag-agnostic ordered-list primitive otherwise.
type rawNode struct {
	XMLName  xml.Name
	Name     string    `xml:"name,attr"`
	Required string    `xml:"required,attr"`
	Children []rawNode `xml:",any"`
}

// rawMessage mirrors one <messages><message .../></messages> entry.
type rawMessage struct {
	Name     string    `xml:"name,attr"`
	MsgType  string    `xml:"msgtype,attr"`
	MsgCat   string    `xml:"msgcat,attr"`
	Children []rawNode `xml:",any"`
}

// rawComponent mirrors one <components><component .../></components>
// entry: a named, reusable field/group/component list spliced inline
// wherever a <component name="..."/> reference appears.
type rawComponent struct {
	Name     string    `xml:"name,attr"`
	Children []rawNode `xml:",any"`
}

// rawDictionary mirrors the document root of a QuickFIX-style data
// dictionary: <fix type="FIX" major="4" minor="2"> with <fields>,
// <header>, <trailer>, <messages>, and an optional <components> section.
type rawDictionary struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Major   string `xml:"major,attr"`
	Minor   string `xml:"minor,attr"`

	Fields     []rawField     `xml:"fields>field"`
	Header     rawNode        `xml:"header"`
	Trailer    rawNode        `xml:"trailer"`
	Messages   []rawMessage   `xml:"messages>message"`
	Components []rawComponent `xml:"components>component"`
}

// LoadVersion parses a FIX data dictionary document and returns its
// materialized VersionSchema. The version string ("FIX.4.2") is taken
// from the document's type/major/minor attributes.
func LoadVersion(r io.Reader) (*VersionSchema, error) {
	var raw rawDictionary
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, &LoadError{Cause: fmt.Errorf("%w: %v", ErrMalformedXML, err)}
	}
	return buildSchema(&raw)
}

// LoadVersionFile opens and parses a dictionary file from disk.
func LoadVersionFile(path string) (*VersionSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	defer f.Close()

	schema, err := LoadVersion(f)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			if le.Path != "" {
				le.Path = path + ": " + le.Path
			} else {
				le.Path = path
			}
			return nil, le
		}
		return nil, &LoadError{Path: path, Cause: err}
	}
	return schema, nil
}

// builder carries the mutable state needed while walking one dictionary
// document: the flat field-name registry, the raw component bodies
// (expanded afresh at every reference), and cycle detection for components
// currently being expanded along the active path.
type builder struct {
	version    string
	fields     map[string]*FieldDef
	components map[string]rawComponent
	expanding  map[string]bool
	groups     map[string]*GroupDef
}

func buildSchema(raw *rawDictionary) (*VersionSchema, error) {
	version := fmt.Sprintf("%s.%s.%s", raw.Type, raw.Major, raw.Minor)
	if raw.Type == "" || raw.Major == "" || raw.Minor == "" {
		return nil, &LoadError{Cause: fmt.Errorf("%w: missing type/major/minor on root element", ErrMalformedXML)}
	}

	b := &builder{
		version:    version,
		fields:     make(map[string]*FieldDef, len(raw.Fields)),
		components: make(map[string]rawComponent, len(raw.Components)),
		expanding:  make(map[string]bool),
		groups:     make(map[string]*GroupDef),
	}

	byNumber := make(map[string]*FieldDef, len(raw.Fields))
	for _, rf := range raw.Fields {
		fd := &FieldDef{
			Number: rf.Number,
			Name:   rf.Name,
			Type:   DataType(rf.Type),
		}
		for _, rv := range rf.Values {
			fd.Enums = append(fd.Enums, EnumValue{Enum: rv.Enum, Description: rv.Description})
		}
		if _, dup := byNumber[fd.Number]; dup {
			return nil, &LoadError{Version: version, Path: "fields/field[" + fd.Name + "]", Cause: ErrDuplicateFieldNumber}
		}
		byNumber[fd.Number] = fd
		b.fields[fd.Name] = fd
	}

	for _, rc := range raw.Components {
		b.components[rc.Name] = rc
	}

	header, err := b.buildEntries(raw.Header.Children, "header")
	if err != nil {
		return nil, err
	}
	trailer, err := b.buildEntries(raw.Trailer.Children, "trailer")
	if err != nil {
		return nil, err
	}

	messagesByType := make(map[string]*MessageDef, len(raw.Messages))
	messagesByName := make(map[string]*MessageDef, len(raw.Messages))
	for _, rm := range raw.Messages {
		body, err := b.buildEntries(rm.Children, "messages/message["+rm.Name+"]")
		if err != nil {
			return nil, err
		}
		md := &MessageDef{
			Name:    rm.Name,
			MsgType: rm.MsgType,
			MsgCat:  MsgCat(rm.MsgCat),
			Body:    body,
		}
		messagesByType[md.MsgType] = md
		messagesByName[md.Name] = md
	}

	return &VersionSchema{
		Version:        version,
		fieldsByName:   b.fields,
		fieldsByNumber: byNumber,
		Header:         header,
		Trailer:        trailer,
		messagesByType: messagesByType,
		messagesByName: messagesByName,
		Groups:         b.groups,
	}, nil
}

// buildEntries walks a slice of heterogeneous field/group/component
// children in document order, splicing component references inline and
// recursing into group templates. path identifies the container for
// error reporting.
func (b *builder) buildEntries(children []rawNode, path string) (EntryList, error) {
	var out EntryList
	for _, child := range children {
		switch child.XMLName.Local {
		case "field":
			fd, ok := b.fields[child.Name]
			if !ok {
				return nil, &LoadError{Version: b.version, Path: path + "/field[" + child.Name + "]", Cause: ErrUnknownFieldRef}
			}
			out = append(out, EntrySpec{Kind: EntryField, Field: fd, Required: child.Required == "Y"})

		case "group":
			countField, ok := b.fields[child.Name]
			if !ok {
				return nil, &LoadError{Version: b.version, Path: path + "/group[" + child.Name + "]", Cause: ErrUnknownFieldRef}
			}
			template, err := b.buildEntries(child.Children, path+"/group["+child.Name+"]")
			if err != nil {
				return nil, err
			}
			gd := &GroupDef{Name: child.Name, CountField: countField, Template: template}
			b.groups[gd.Name] = gd
			out = append(out, EntrySpec{Kind: EntryGroup, Group: gd, Required: child.Required == "Y"})

		case "component":
			spliced, err := b.expandComponent(child.Name, path)
			if err != nil {
				return nil, err
			}
			out = append(out, spliced...)

		default:
			// Unknown element kinds inside a template are ignored rather
			// than rejected, matching the dictionary's own tolerance for
			// vendor extensions.
		}
	}
	return out, nil
}

// expandComponent resolves a <component name="..."/> reference into its
// spliced entry list, detecting and rejecting cycles.
func (b *builder) expandComponent(name, path string) (EntryList, error) {
	if b.expanding[name] {
		return nil, &LoadError{Version: b.version, Path: path + "/component[" + name + "]", Cause: ErrComponentCycle}
	}
	rc, ok := b.components[name]
	if !ok {
		return nil, &LoadError{Version: b.version, Path: path + "/component[" + name + "]", Cause: ErrUnknownFieldRef}
	}

	b.expanding[name] = true
	defer delete(b.expanding, name)

	return b.buildEntries(rc.Children, path+"/component["+name+"]")
}
