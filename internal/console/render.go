package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bookishbrew/bookstore/internal/entities"
)

var (
	titleStyle  = color.New(color.FgGreen, color.Bold)
	recordStyle = color.New(color.FgYellow, color.Bold)
	errorStyle  = color.New(color.FgRed, color.Bold)
)

// Renderer writes styled status text to the terminal. Colors degrade to
// plain text when NO_COLOR is set or the destination is not a TTY.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Screen prints the titled header that opens every operation.
func (r *Renderer) Screen(title string) {
	fmt.Fprintln(r.out)
	titleStyle.Fprintln(r.out, title)
	fmt.Fprintln(r.out, "-------------------")
}

func (r *Renderer) Heading(text string) {
	titleStyle.Fprintln(r.out, text)
}

func (r *Renderer) Option(text string) {
	recordStyle.Fprintln(r.out, text)
}

func (r *Renderer) Record(format string, args ...any) {
	recordStyle.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) Error(text string) {
	errorStyle.Fprintln(r.out, text)
}

func (r *Renderer) Info(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) Book(b entities.Book) {
	r.Record("ID: %d, Title: %s, Author: %s, Genre: %s, Price: %d, Quantity: %d",
		b.ID, b.Title, b.Author, b.Genre, b.Price, b.Quantity)
}

func (r *Renderer) Customer(c entities.Customer) {
	r.Record("ID: %d, Name: %s, Contact: %s", c.ID, c.Name, c.Contact)
}
