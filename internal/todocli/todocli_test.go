package todocli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_AddAndOrder(t *testing.T) {
	list := NewList()

	first, err := list.Add("Buy groceries", "Milk, eggs")
	require.NoError(t, err)
	second, err := list.Add("Walk the dog", "")
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	tasks := list.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "Buy groceries", tasks[0].Title)
	assert.Equal(t, "Walk the dog", tasks[1].Title)
}

func TestList_AddEmptyTitle(t *testing.T) {
	list := NewList()

	_, err := list.Add("   ", "")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Empty(t, list.Tasks())
}

func TestList_Update(t *testing.T) {
	list := NewList()
	task, err := list.Add("Old title", "Old description")
	require.NoError(t, err)

	newTitle := "New title"
	require.NoError(t, list.Update(task.ID, &newTitle, nil))

	updated := list.Tasks()[0]
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Old description", updated.Description)

	assert.ErrorIs(t, list.Update(99, &newTitle, nil), ErrTaskNotFound)
	assert.ErrorIs(t, list.Update(task.ID, nil, nil), ErrNothingToDo)

	empty := " "
	assert.ErrorIs(t, list.Update(task.ID, &empty, nil), ErrEmptyTitle)
}

func TestList_Complete(t *testing.T) {
	list := NewList()
	task, err := list.Add("Finish me", "")
	require.NoError(t, err)

	already, err := list.Complete(task.ID)
	require.NoError(t, err)
	assert.False(t, already)

	already, err = list.Complete(task.ID)
	require.NoError(t, err)
	assert.True(t, already)

	_, err = list.Complete(99)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestList_Delete(t *testing.T) {
	list := NewList()
	task, err := list.Add("Delete me", "")
	require.NoError(t, err)

	require.NoError(t, list.Delete(task.ID))
	assert.ErrorIs(t, list.Delete(task.ID), ErrTaskNotFound)
}

func TestList_ClearResetsIDs(t *testing.T) {
	list := NewList()
	_, err := list.Add("One", "")
	require.NoError(t, err)

	list.Clear()
	assert.Empty(t, list.Tasks())

	task, err := list.Add("Fresh start", "")
	require.NoError(t, err)
	assert.Equal(t, 1, task.ID)
}

func TestList_Stats(t *testing.T) {
	list := NewList()
	first, _ := list.Add("One", "")
	list.Add("Two", "")
	list.Complete(first.ID)

	total, completed := list.Stats()
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, completed)
}

func TestSplitArgs_Quotes(t *testing.T) {
	args := splitArgs(`add "Buy groceries" "Milk, eggs, bread"`)
	assert.Equal(t, []string{"add", "Buy groceries", "Milk, eggs, bread"}, args)

	args = splitArgs("complete 1")
	assert.Equal(t, []string{"complete", "1"}, args)
}

func TestREPL_AddListComplete(t *testing.T) {
	input := strings.Join([]string{
		`add "Buy groceries" "Milk, eggs"`,
		"complete 1",
		"list",
		"exit",
	}, "\n")

	var out strings.Builder
	repl := NewREPL(strings.NewReader(input), &out)
	repl.Run()

	output := out.String()
	assert.Contains(t, output, "Task added successfully! (ID: 1)")
	assert.Contains(t, output, "Task 1 marked as completed!")
	assert.Contains(t, output, "Buy groceries")
	assert.Contains(t, output, "Total: 1 task(s) | Completed: 1 | Pending: 0")
	assert.Contains(t, output, "Goodbye!")
}

func TestREPL_UnknownCommand(t *testing.T) {
	var out strings.Builder
	repl := NewREPL(strings.NewReader("frobnicate\nexit\n"), &out)
	repl.Run()

	assert.Contains(t, out.String(), `Unknown command: "frobnicate"`)
}
