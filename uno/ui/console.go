package ui

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/peterh/liner"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/unoparty/consts"
	"github.com/ratel-online/unoparty/render"
	"github.com/ratel-online/unoparty/service"
	"github.com/ratel-online/unoparty/uno/card/color"
)

// Console plays the human seat of a table from a terminal.
type Console struct {
	table *service.Table
	printer
}

func NewConsole(table *service.Table, out io.Writer) *Console {
	if out == nil {
		out = color.Stdout
	}
	return &Console{table: table, printer: printer{out: out, mu: &sync.Mutex{}}}
}

// Run prints the table as it changes and reads commands until the player
// quits, the prompt is aborted or ctx is done. A finished game waits for new.
func (c *Console) Run(ctx context.Context, line *liner.State) error {
	for _, l := range c.table.Log() {
		c.Print(l)
	}
	c.Println(render.Help())
	c.Print(render.Screen(c.table.Snapshot(service.HumanSeat), service.HumanSeat))

	id := c.table.Subscribe(c.show)
	defer c.table.Unsubscribe(id)

	for ctx.Err() == nil {
		input, err := line.Prompt("(uno) ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				c.Println("Goodbye!")
				return nil
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if c.Handle(input) {
			return nil
		}
	}
	return ctx.Err()
}

// Handle executes one line of input and reports whether the player quit.
func (c *Console) Handle(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "quit", "q", "exit":
		c.Println("Goodbye!")
		return true
	case "hand", "table":
		c.Print(render.Screen(c.table.Snapshot(service.HumanSeat), service.HumanSeat))
		return false
	}

	command, err := service.ParseCommand(input)
	if err == nil && command.Kind == service.CommandHelp {
		c.Println(render.Help())
		return false
	}
	if err == nil {
		err = c.table.Execute(command)
	}
	if err != nil {
		var known consts.Error
		if !errors.As(err, &known) {
			log.Error(err)
		}
		c.Printfln("%s Type 'help' for the commands.", err.Error())
	}
	return false
}

func (c *Console) show(update service.Update) {
	c.Print(strings.Join(update.Lines, ""))
	c.Print(render.Screen(update.State, service.HumanSeat))
}
