// Command visiodump demonstrates the govisio library by dumping a
// document's metadata and paint-call trace to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/beakyn/govisio"
)

func main() {
	var (
		stencilsOnly = flag.Bool("stencils", false, "extract only the stencil registry, do not paint")
		metaOnly     = flag.Bool("meta", false, "print only document metadata")
		codePage     = flag.Int("codepage", 1252, "ANSI code page for narrow text runs")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: visiodump [-stencils|-meta] [-codepage N] <file.vsd|.vsdx|.vdx>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Fatalf("stat: %v", err)
	}

	if *metaOnly {
		meta, err := govisio.Metadata(f, info.Size())
		if err != nil {
			log.Fatalf("metadata: %v", err)
		}
		fmt.Printf("title:  %s\n", meta.Title)
		fmt.Printf("author: %s\n", meta.Author)
		fmt.Printf("pages:  %d\n", meta.PageCount)
		return
	}

	if *stencilsOnly {
		registry, err := govisio.ExtractStencils(f, info.Size())
		if err != nil {
			log.Fatalf("extract stencils: %v", err)
		}
		fmt.Printf("stencil registry populated: %v\n", registry != nil)
		return
	}

	painter := &dumpPainter{}
	doc, err := govisio.Parse(f, info.Size(), painter, govisio.Options{CodePage: *codePage})
	if err != nil {
		log.Fatalf("parse: %v", err)
	}
	fmt.Printf("pages: %d, style sheets: %d\n", len(doc.Pages), len(doc.Styles.Sheets))
}

// dumpPainter implements govisio.PaintInterface by logging every call,
// the way a first integration of a new PaintInterface consumer typically
// starts before it grows a real renderer backend.
type dumpPainter struct {
	depth int
}

func (p *dumpPainter) indent() string {
	s := ""
	for i := 0; i < p.depth; i++ {
		s += "  "
	}
	return s
}

func (p *dumpPainter) StartDocument() { fmt.Println("document") }
func (p *dumpPainter) EndDocument()   {}

func (p *dumpPainter) StartPage(props govisio.Props) {
	fmt.Printf("%spage %v\n", p.indent(), props)
	p.depth++
}
func (p *dumpPainter) EndPage() {
	p.depth--
}

func (p *dumpPainter) SetStyle(props govisio.Props, gradient []govisio.Props) {}

func (p *dumpPainter) DrawPath(elements []govisio.PathElement) {
	fmt.Printf("%spath: %d elements\n", p.indent(), len(elements))
}
func (p *dumpPainter) DrawEllipse(props govisio.Props) {
	fmt.Printf("%sellipse %v\n", p.indent(), props)
}
func (p *dumpPainter) DrawGraphicObject(props govisio.Props, data []byte) {
	fmt.Printf("%simage: %d bytes\n", p.indent(), len(data))
}

func (p *dumpPainter) StartLayer(props govisio.Props) { p.depth++ }
func (p *dumpPainter) EndLayer()                       { p.depth-- }

func (p *dumpPainter) StartTextObject(props govisio.Props) { p.depth++ }
func (p *dumpPainter) EndTextObject()                      { p.depth-- }
func (p *dumpPainter) OpenParagraph(props govisio.Props)   {}
func (p *dumpPainter) CloseParagraph()                     {}
func (p *dumpPainter) OpenSpan(props govisio.Props)        {}
func (p *dumpPainter) CloseSpan()                          {}
func (p *dumpPainter) InsertText(text string) {
	fmt.Printf("%stext: %q\n", p.indent(), text)
}
func (p *dumpPainter) InsertTab()       {}
func (p *dumpPainter) InsertSpace()     {}
func (p *dumpPainter) InsertLineBreak() {}
func (p *dumpPainter) InsertField(props govisio.Props) {}

var _ govisio.PaintInterface = (*dumpPainter)(nil)
