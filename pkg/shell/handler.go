package shell

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/nobletooth/primer/pkg/list"
)

var errArgs = errors.New("wrong number of arguments")

// command represents a parsed shell line with its arguments.
type command struct {
	name string
	args []string
}

// parseCommand splits a shell `line` into a command; the command name is case-insensitive.
func parseCommand(line string) (command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, false
	}
	return command{name: strings.ToUpper(fields[0]), args: fields[1:]}, true
}

// handler executes commands over a set of named integer lists.
type handler struct {
	lists map[ /*name*/ string]*list.LinkedList[int]
}

func newHandler() *handler {
	return &handler{lists: make(map[string]*list.LinkedList[int])}
}

// getOrCreate returns the list called `name`, creating an empty one if missing.
func (h *handler) getOrCreate(name string) *list.LinkedList[int] {
	l, exists := h.lists[name]
	if !exists {
		l = list.New[int]()
		h.lists[name] = l
	}
	return l
}

// lookup returns the list called `name` or an empty one that is not stored.
func (h *handler) lookup(name string) *list.LinkedList[int] {
	if l, exists := h.lists[name]; exists {
		return l
	}
	return list.New[int]()
}

// intArgs parses all `args` as integers.
func intArgs(args ...string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("value is not an integer: '%s'", arg)
		}
		values[i] = v
	}
	return values, nil
}

// expectArgs checks that `cmd` got exactly `count` arguments.
func expectArgs(cmd command, count int) error {
	if len(cmd.args) != count {
		return fmt.Errorf("%w for '%s' command", errArgs, cmd.name)
	}
	return nil
}

// result converts a list operation error into an output.
func result(err error) output {
	if err != nil {
		return writeError(err)
	}
	return writeOk()
}

// optional converts a lookup that may miss into an output.
func optional(value int, ok bool) output {
	if !ok {
		return writeNil()
	}
	return writeInt(value)
}

// argCounts is the number of arguments each command takes.
var argCounts = map[string]int{
	"PING": 0, "QUIT": 0, "LISTS": 0,
	"INSERT_BEGIN": 2, "INSERT_END": 2, "INSERT_AT": 3,
	"DELETE_BEGIN": 1, "DELETE_END": 1, "DELETE_AT": 2, "DELETE_VALUE": 2,
	"SEARCH": 2, "GET": 2,
	"UPDATE_BEGIN": 2, "UPDATE_END": 2, "UPDATE_AT": 3,
	"SHOW": 1, "LEN": 1, "MIDDLE": 1, "MIDDLE_BY_LENGTH": 1,
	"MERGE": 3,
}

func (h *handler) handle(cmd command) output {
	count, known := argCounts[cmd.name]
	if !known {
		return writeError(fmt.Errorf("unknown command '%s'", cmd.name))
	}
	if err := expectArgs(cmd, count); err != nil {
		return writeError(err)
	}

	switch cmd.name {
	case "PING":
		return writeString("PONG")
	case "QUIT":
		return quitShell("OK")
	case "LISTS":
		names := slices.Sorted(maps.Keys(h.lists))
		return writeString(strings.Join(names, " "))
	case "SHOW":
		return writeString(h.lookup(cmd.args[0]).String())
	case "LEN":
		return writeInt(h.lookup(cmd.args[0]).Len())
	case "MIDDLE":
		return optional(h.lookup(cmd.args[0]).FindMiddleTwoPointers())
	case "MIDDLE_BY_LENGTH":
		return optional(h.lookup(cmd.args[0]).FindMiddleByLength())
	case "DELETE_BEGIN":
		return result(h.lookup(cmd.args[0]).DeleteAtBeginning())
	case "DELETE_END":
		return result(h.lookup(cmd.args[0]).DeleteAtEnd())
	case "MERGE":
		return h.merge(cmd.args[0], cmd.args[1], cmd.args[2])
	}

	// The remaining commands take a list name followed by integers.
	name := cmd.args[0]
	values, err := intArgs(cmd.args[1:]...)
	if err != nil {
		return writeError(err)
	}
	switch cmd.name {
	case "INSERT_BEGIN":
		h.getOrCreate(name).InsertAtBeginning(values[0])
		return writeOk()
	case "INSERT_END":
		h.getOrCreate(name).InsertAtEnd(values[0])
		return writeOk()
	case "INSERT_AT": // INSERT_AT name position value
		return result(h.getOrCreate(name).InsertAtPosition(values[1], values[0]))
	case "DELETE_AT":
		return result(h.lookup(name).DeleteAtPosition(values[0]))
	case "DELETE_VALUE":
		return result(h.lookup(name).DeleteFirstOccurrence(values[0]))
	case "SEARCH":
		return writeInt(h.lookup(name).SearchByValue(values[0]))
	case "GET":
		return optional(h.lookup(name).SearchByIndex(values[0]))
	case "UPDATE_BEGIN":
		return result(h.lookup(name).UpdateAtBeginning(values[0]))
	case "UPDATE_END":
		return result(h.lookup(name).UpdateAtEnd(values[0]))
	case "UPDATE_AT": // UPDATE_AT name position value
		return result(h.lookup(name).UpdateAtPosition(values[1], values[0]))
	default:
		return writeError(fmt.Errorf("unknown command '%s'", cmd.name))
	}
}

// merge consumes lists `a` and `b` into `dst`, replacing whatever `dst` held.
func (h *handler) merge(dst, a, b string) output {
	if a == b {
		return writeError(fmt.Errorf("cannot merge list '%s' with itself", a))
	}
	merged := list.MergeSorted(h.lookup(a), h.lookup(b))
	delete(h.lists, a)
	delete(h.lists, b)
	h.lists[dst] = merged
	return writeInt(merged.Len())
}
