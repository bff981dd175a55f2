package todo

// Ref addresses a task or subtask inside a file. TaskIndex is 0-based;
// SubtaskIndex is 0-based or -1 when the reference names a whole task.
// Refs are ephemeral: produced by ParseRef, consumed by a mutating
// operation, never persisted.
type Ref struct {
	TaskIndex    int
	SubtaskIndex int
}

// IsSubtask reports whether the reference names a subtask.
func (r Ref) IsSubtask() bool {
	return r.SubtaskIndex >= 0
}

// ParseRef parses a task reference such as "3" or "3a": one or more
// digits (1-based task number) optionally followed by a single
// lowercase letter ('a'-'z', subtask 1-26). ParseRef checks only the
// grammar and the number range; bounds against an actual file are
// checked by the operation consuming the Ref.
func ParseRef(input string) (Ref, error) {
	ref := Ref{SubtaskIndex: -1}
	if input == "" {
		return ref, validationErrorf(InvalidReference, "Empty task reference")
	}

	number := 0
	digits := 0
	letterSeen := false
	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case ch >= '0' && ch <= '9':
			if letterSeen {
				return ref, validationErrorf(InvalidReference, "Subtask letter must come last: %s", input)
			}
			number = number*10 + int(ch-'0')
			digits++
			if number > MaxTaskNumber {
				return ref, validationErrorf(InvalidReference, "Task number too large: %s (maximum is %d)", input, MaxTaskNumber)
			}
		case ch >= 'a' && ch <= 'z':
			if i == 0 {
				return ref, validationErrorf(InvalidReference, "Task reference must start with a number: %s", input)
			}
			if letterSeen {
				return ref, validationErrorf(InvalidReference, "Multiple subtask letters not allowed: %s", input)
			}
			letterSeen = true
			ref.SubtaskIndex = int(ch - 'a')
		default:
			return ref, validationErrorf(InvalidReference, "Invalid character in task reference: %q", string(ch))
		}
	}

	if digits == 0 {
		return ref, validationErrorf(InvalidReference, "No task number found: %s", input)
	}
	if number == 0 {
		return ref, validationErrorf(InvalidReference, "Task number must be at least 1")
	}

	ref.TaskIndex = number - 1
	return ref, nil
}

// ParseRefs parses a list of references, stopping at the first bad one.
func ParseRefs(inputs []string) ([]Ref, error) {
	refs := make([]Ref, 0, len(inputs))
	for _, input := range inputs {
		ref, err := ParseRef(input)
		if err != nil {
			return nil, validationErrorf(InvalidReference, "Invalid task reference %q: %v", input, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
