package todo

// Action is one logical input in a review session. Raw key presses
// decode to this closed set; anything unrecognized is ActionNone.
type Action int

const (
	ActionNone Action = iota
	ActionPrioritize
	ActionArchive
	ActionKeep
	ActionUndo
	ActionQuit
)

// ActionForKey maps a key name to a review action. Arrow keys have
// letter fallbacks for terminals that swallow escape sequences.
func ActionForKey(key string) Action {
	switch key {
	case "up", "p":
		return ActionPrioritize
	case "right", "a":
		return ActionArchive
	case "down", "s", "enter":
		return ActionKeep
	case "left":
		return ActionUndo
	case "q", "esc", "ctrl+c":
		return ActionQuit
	default:
		return ActionNone
	}
}

// Decision is what the reviewer chose for one task.
type Decision int

const (
	DecisionKeep Decision = iota
	DecisionPrioritize
	DecisionArchive
)

type reviewStep struct {
	index    int
	decision Decision
}

// Session walks the tasks of a file top to bottom, recording one
// decision per task. The file is untouched until Commit, so quitting
// mid-review loses nothing and undo is a pure stack pop.
type Session struct {
	file  *File
	pos   int
	steps []reviewStep
}

func NewSession(f *File) *Session {
	return &Session{file: f}
}

// Done reports whether every task has a decision.
func (s *Session) Done() bool {
	return s.pos >= len(s.file.Tasks)
}

// Position is the 0-based index of the task under review.
func (s *Session) Position() int {
	return s.pos
}

// Len is the total number of tasks in the session.
func (s *Session) Len() int {
	return len(s.file.Tasks)
}

// Current returns the task under review, or nil once the session is
// done.
func (s *Session) Current() *Task {
	if s.Done() {
		return nil
	}
	return &s.file.Tasks[s.pos]
}

// Decided is the count of decisions recorded so far.
func (s *Session) Decided() int {
	return len(s.steps)
}

// Apply feeds one action to the session. Decisions advance to the
// next task; ActionUndo steps back one decision; ActionQuit and
// ActionNone change nothing.
func (s *Session) Apply(action Action) {
	switch action {
	case ActionPrioritize:
		s.decide(DecisionPrioritize)
	case ActionArchive:
		s.decide(DecisionArchive)
	case ActionKeep:
		s.decide(DecisionKeep)
	case ActionUndo:
		s.Undo()
	}
}

func (s *Session) decide(d Decision) {
	if s.Done() {
		return
	}
	s.steps = append(s.steps, reviewStep{index: s.pos, decision: d})
	s.pos++
}

// Counts breaks down the recorded decisions by kind.
func (s *Session) Counts() (prioritized, archived, kept int) {
	for _, step := range s.steps {
		switch step.decision {
		case DecisionPrioritize:
			prioritized++
		case DecisionArchive:
			archived++
		case DecisionKeep:
			kept++
		}
	}
	return prioritized, archived, kept
}

// Undo steps back one decision and reports whether there was one to
// undo.
func (s *Session) Undo() bool {
	if len(s.steps) == 0 {
		return false
	}
	last := s.steps[len(s.steps)-1]
	s.steps = s.steps[:len(s.steps)-1]
	s.pos = last.index
	return true
}

// Outcome summarizes a committed session. Prioritized and Archived
// are in decision order; Reviewed counts the tasks that received a
// decision.
type Outcome struct {
	Prioritized []Task
	Archived    []Task
	Reviewed    int
}

// Commit applies the recorded decisions to the file. Prioritized
// tasks move to the front in decision order, archived tasks are
// removed and returned for archiving, and everything else, including
// tasks never reached, keeps its relative order. Commit works the
// same whether the session finished or was quit partway.
func (s *Session) Commit() *Outcome {
	outcome := &Outcome{Reviewed: len(s.steps)}

	prioritized := make(map[int]bool)
	archived := make(map[int]bool)
	for _, step := range s.steps {
		switch step.decision {
		case DecisionPrioritize:
			prioritized[step.index] = true
			outcome.Prioritized = append(outcome.Prioritized, s.file.Tasks[step.index].Clone())
		case DecisionArchive:
			archived[step.index] = true
			outcome.Archived = append(outcome.Archived, s.file.Tasks[step.index].Clone())
		}
	}

	next := make([]Task, 0, len(s.file.Tasks)-len(archived))
	next = append(next, outcome.Prioritized...)
	for i, task := range s.file.Tasks {
		if prioritized[i] || archived[i] {
			continue
		}
		next = append(next, task)
	}
	s.file.Tasks = next
	return outcome
}
