package todocli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const helpText = `
Todo CLI - Task Management Application

COMMANDS:
  add <title> [description]     Add a new task
  update <id> [title] [desc]    Update an existing task
  complete <id>                 Mark a task as completed
  delete <id>                   Delete a task
  list                          List all tasks
  clear                         Clear all tasks
  help                          Show this help message
  exit/quit                     Exit the application

EXAMPLES:
  > add "Buy groceries" "Milk, eggs, bread"
  > update 1 "Buy groceries tomorrow"
  > complete 1
  > delete 1
  > list
  > clear

Note: Data is stored in memory and will be lost when the app exits.
`

// REPL reads commands from in and writes responses to out until the user
// exits or input runs dry.
type REPL struct {
	list *List
	in   *bufio.Scanner
	out  io.Writer
}

// NewREPL creates a REPL over the given streams.
func NewREPL(in io.Reader, out io.Writer) *REPL {
	return &REPL{
		list: NewList(),
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run executes the main loop.
func (r *REPL) Run() {
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintln(r.out, "Welcome to Todo CLI")
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintln(r.out, "Type 'help' for available commands or 'exit' to quit.")

	for {
		fmt.Fprint(r.out, "> ")
		if !r.in.Scan() {
			return
		}

		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}

		parts := splitArgs(line)
		command := strings.ToLower(parts[0])
		args := parts[1:]

		switch command {
		case "exit", "quit":
			fmt.Fprintln(r.out, "Goodbye!")
			return
		case "help":
			fmt.Fprint(r.out, helpText+"\n")
		case "add":
			r.handleAdd(args)
		case "update":
			r.handleUpdate(args)
		case "complete":
			r.handleComplete(args)
		case "delete":
			r.handleDelete(args)
		case "list":
			r.handleList()
		case "clear":
			r.handleClear()
		default:
			fmt.Fprintf(r.out, "Unknown command: %q. Type 'help' for available commands.\n", command)
		}
	}
}

func (r *REPL) handleAdd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "Usage: add <title> [description]")
		return
	}

	description := ""
	if len(args) > 1 {
		description = strings.Join(args[1:], " ")
	}

	task, err := r.list.Add(args[0], description)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Task added successfully! (ID: %d)\n", task.ID)
}

func (r *REPL) handleUpdate(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "Usage: update <id> [title] [description]")
		return
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "Error: invalid task ID %q\n", args[0])
		return
	}

	var title, description *string
	if len(args) > 1 {
		title = &args[1]
	}
	if len(args) > 2 {
		joined := strings.Join(args[2:], " ")
		description = &joined
	}

	if err := r.list.Update(id, title, description); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Task %d updated successfully!\n", id)
}

func (r *REPL) handleComplete(args []string) {
	id, ok := r.parseID(args, "complete")
	if !ok {
		return
	}

	already, err := r.list.Complete(id)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	if already {
		fmt.Fprintf(r.out, "Task %d is already completed.\n", id)
	} else {
		fmt.Fprintf(r.out, "Task %d marked as completed!\n", id)
	}
}

func (r *REPL) handleDelete(args []string) {
	id, ok := r.parseID(args, "delete")
	if !ok {
		return
	}

	if err := r.list.Delete(id); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Task %d deleted successfully!\n", id)
}

func (r *REPL) handleList() {
	tasks := r.list.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(r.out, "No tasks found. Add a task to get started!")
		return
	}

	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintln(r.out, "TODO LIST")
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	for _, task := range tasks {
		fmt.Fprintln(r.out, task)
		fmt.Fprintln(r.out, strings.Repeat("-", 60))
	}

	total, completed := r.list.Stats()
	fmt.Fprintf(r.out, "Total: %d task(s) | Completed: %d | Pending: %d\n", total, completed, total-completed)
}

func (r *REPL) handleClear() {
	total, _ := r.list.Stats()
	if total == 0 {
		fmt.Fprintln(r.out, "No tasks to clear.")
		return
	}

	fmt.Fprint(r.out, "Are you sure you want to clear all tasks? (yes/no): ")
	if !r.in.Scan() {
		return
	}
	answer := strings.ToLower(strings.TrimSpace(r.in.Text()))
	if answer == "yes" || answer == "y" {
		r.list.Clear()
		fmt.Fprintln(r.out, "All tasks cleared successfully!")
	} else {
		fmt.Fprintln(r.out, "Clear operation cancelled.")
	}
}

func (r *REPL) parseID(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "Usage: %s <id>\n", usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "Error: invalid task ID %q\n", args[0])
		return 0, false
	}
	return id, true
}

// splitArgs splits a command line into fields, keeping double-quoted
// sections together.
func splitArgs(line string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}

	return args
}
