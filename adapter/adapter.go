// Package adapter wraps a printer with a legacy API behind the Requester
// interface that client code expects.
package adapter

import (
	"fmt"
	"io"
)

// OldPrinter is the adaptee; its API cannot change.
type OldPrinter struct {
	out io.Writer
}

func NewOldPrinter(w io.Writer) *OldPrinter {
	if w == nil {
		w = io.Discard
	}
	return &OldPrinter{out: w}
}

func (p *OldPrinter) PrintText(text string) {
	fmt.Fprintf(p.out, "OldPrinter prints: %s\n", text)
}

// Requester is the interface client code is written against.
type Requester interface {
	Request(text string)
}

var _ Requester = (*PrinterAdapter)(nil)

// PrinterAdapter translates Request calls into OldPrinter.PrintText.
type PrinterAdapter struct {
	printer *OldPrinter
}

func NewPrinterAdapter(printer *OldPrinter) *PrinterAdapter {
	return &PrinterAdapter{printer: printer}
}

func (a *PrinterAdapter) Request(text string) {
	fmt.Fprintln(a.printer.out, "Adapter's 'request' method called...")
	a.printer.PrintText(text)
}

func Demo(w io.Writer) error {
	var client Requester = NewPrinterAdapter(NewOldPrinter(w))
	fmt.Fprintln(w, "Client making a request...")
	client.Request("Hello, World!")
	return nil
}
