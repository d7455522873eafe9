// Command fixdump parses a single FIX tag/value message against a data
// dictionary and prints its structure in a human-readable form.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/template"

	"github.com/jwhart/fixgo/dictionary"
	"github.com/jwhart/fixgo/fix"
	"github.com/jwhart/fixgo/parse"
	"github.com/jwhart/fixgo/validate"
)

func usage() {
	_, _ = fmt.Fprintf(os.Stderr, "usage: %v [flags] <message file>\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(2)
}

var dumpFuncs = template.FuncMap{
	"fieldString": fieldString,
	"entry":       entry,
}

var dumpTemplate = template.Must(template.New("dump").Funcs(dumpFuncs).Parse(`{{.Def.Name}} ({{.Def.MsgType}}) on {{.Schema.Version}}

header:
{{range .Header.Entries}}  {{.Number}} {{.Name}} = {{fieldString .Value}}
{{end -}}
body:
{{range .Body.Entries}}{{entry . 1}}{{end -}}
trailer:
{{range .Trailer.Entries}}  {{.Number}} {{.Name}} = {{fieldString .Value}}
{{end -}}
`))

func fieldString(v fix.Value) string {
	switch fv := v.(type) {
	case *fix.FieldValue:
		return fv.Raw
	case *fix.GroupValue:
		return fmt.Sprintf("<%d repetitions>", fv.Count())
	default:
		return ""
	}
}

func entry(e fix.Entry, depth int) string {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	switch v := e.Value.(type) {
	case *fix.FieldValue:
		return fmt.Sprintf("%s%s %s = %s\n", indent, e.Number, e.Name, v.Raw)
	case *fix.GroupValue:
		out := fmt.Sprintf("%s%s %s (%d repetitions)\n", indent, e.Number, e.Name, v.Count())
		for i, rep := range v.Repetitions {
			out += fmt.Sprintf("%s  [%d]\n", indent, i)
			for _, sub := range rep.Entries() {
				out += entry(sub, depth+2)
			}
		}
		return out
	default:
		return ""
	}
}

func main() {
	var dictPath, forceMsgType string
	flag.StringVar(&dictPath, "dict", "", "path to a FIX data dictionary XML file (required)")
	flag.StringVar(&forceMsgType, "force-msgtype", "", "interpret the message as this MsgType, ignoring tag 35")
	allowUnknown := flag.Bool("allow-unknown-msgtype", false, "proceed with a generic body template when MsgType names no declared message")
	validateOnly := flag.Bool("validate", false, "also run structural validation and report violations")
	flag.Usage = usage
	flag.Parse()

	if dictPath == "" || flag.NArg() != 1 {
		usage()
	}

	catalog := dictionary.NewCatalog()
	if _, err := catalog.RegisterVersionFile(dictPath); err != nil {
		log.Fatalf("loading dictionary %s: %v", dictPath, err)
	}

	data, err := readMessageFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading message: %v", err)
	}

	var opts []parse.Option
	if forceMsgType != "" {
		opts = append(opts, parse.WithForceMsgType(forceMsgType))
	}
	if *allowUnknown {
		opts = append(opts, parse.WithAllowUnknownMsgType(true))
	}
	p := parse.New(catalog, opts...)

	msg, err := p.Parse(data)
	if err != nil {
		log.Fatalf("parsing message: %v", err)
	}

	if err := dumpTemplate.Execute(os.Stdout, msg); err != nil {
		log.Fatalf("rendering message: %v", err)
	}

	if *validateOnly {
		violations := validate.Message(msg)
		if len(violations) == 0 {
			fmt.Println("\nstructural validation: no violations")
			return
		}
		fmt.Printf("\nstructural validation: %d violation(s)\n", len(violations))
		for _, v := range violations {
			fmt.Println("  " + v.Error())
		}
	}
}

func readMessageFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
