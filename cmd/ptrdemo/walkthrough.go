package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"smartptr/domain/owner"
	"smartptr/infra/memory"
)

type narrator struct {
	out     io.Writer
	title   *color.Color
	address *color.Color
}

func newNarrator(out io.Writer) *narrator {
	return &narrator{
		out:     out,
		title:   color.New(color.FgYellow, color.Bold),
		address: color.New(color.FgCyan),
	}
}

func (n *narrator) heading(s string) {
	n.title.Fprintln(n.out, s)
}

func (n *narrator) say(format string, args ...any) {
	fmt.Fprintf(n.out, format+"\n", args...)
}

func (n *narrator) points(name string, p *int) {
	fmt.Fprintf(n.out, "%s points to %s\n", name, n.address.Sprintf("%#x", memory.AddressOf(p)))
}

func exclusiveWalkthrough(n *narrator) {
	n.heading("Exclusive ownership")

	v := 42
	first := owner.NewUnique(&v)
	defer first.Close()
	n.points("first", first.Get())
	n.say("value behind first: %d", first.Value())

	second := first.Move()
	defer second.Close()
	n.say("ownership moved from first to second")
	n.points("second", second.Get())
	if first.Empty() {
		n.say("first no longer points to anything")
	}
	n.say("value behind second: %d", second.Value())

	second.Reset()
	if second.Empty() {
		n.say("second no longer points to anything")
	}
}

func sharedWalkthrough(n *narrator) {
	n.heading("Shared ownership")

	v := 42
	p1 := owner.NewShared(&v)
	defer p1.Close()
	n.points("p1", p1.Get())
	n.say("owners: %d", p1.UseCount())

	p2 := p1.Clone()
	defer p2.Close()
	n.points("p2", p2.Get())
	n.say("owners: %d", p1.UseCount())

	p3 := p1.Clone()
	defer p3.Close()
	n.points("p3", p3.Get())
	n.say("owners: %d", p3.UseCount())

	p1.Reset()
	n.say("p1 dropped its share, owners: %d", p3.UseCount())
	n.say("value behind p3: %d", p3.Value())
}
