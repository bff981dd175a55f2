package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/ldr-go/internal/todo"
)

// reviewModel drives one review session. All decision semantics live
// in todo.Session; the model only decodes keys and draws the screen.
type reviewModel struct {
	session *todo.Session
	styles  Styles
}

func newReviewModel(session *todo.Session, st Styles) *reviewModel {
	return &reviewModel{session: session, styles: st}
}

func (m *reviewModel) Init() tea.Cmd {
	return nil
}

func (m *reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch action := todo.ActionForKey(key.String()); action {
	case todo.ActionQuit:
		return m, tea.Quit
	case todo.ActionNone:
		return m, nil
	default:
		m.session.Apply(action)
		if m.session.Done() {
			return m, tea.Quit
		}
		return m, nil
	}
}

func (m *reviewModel) View() string {
	var b strings.Builder
	writeReviewHeader(&b, m.styles, m.session)
	if m.session.Done() {
		b.WriteString("  Review complete.\n\n")
	} else {
		writeReviewTask(&b, m.styles, m.session)
	}
	writeReviewTally(&b, m.styles, m.session)
	writeReviewHelp(&b, m.styles)
	return b.String()
}

func writeReviewHeader(b *strings.Builder, st Styles, s *todo.Session) {
	b.WriteString(st.Title.Render("Review"))
	if !s.Done() {
		b.WriteString(st.Help.Render(fmt.Sprintf("  task %d of %d", s.Position()+1, s.Len())))
	}
	b.WriteString("\n\n")
}

func writeReviewTask(b *strings.Builder, st Styles, s *todo.Session) {
	number := s.Position() + 1
	task := s.Current()

	b.WriteString(st.Cursor.Render("> "))
	b.WriteString(st.Task(number).Render(fmt.Sprintf("%3d. %s", number, task.Text)))
	b.WriteByte('\n')
	for i, sub := range task.Subtasks {
		line := fmt.Sprintf("       %c. %s", 'a'+i, sub)
		b.WriteString(st.Subtask(number).Render(line))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func writeReviewTally(b *strings.Builder, st Styles, s *todo.Session) {
	prioritized, archived, kept := s.Counts()
	if prioritized+archived+kept == 0 {
		return
	}
	b.WriteString("  ")
	b.WriteString(st.Accent.Render(fmt.Sprintf("prioritized %d", prioritized)))
	b.WriteString("   ")
	b.WriteString(st.Success.Render(fmt.Sprintf("archived %d", archived)))
	b.WriteString("   ")
	b.WriteString(st.Help.Render(fmt.Sprintf("kept %d", kept)))
	b.WriteString("\n\n")
}

func writeReviewHelp(b *strings.Builder, st Styles) {
	help := "  up/p prioritize   right/a archive   down/s/enter keep   left undo   q quit"
	b.WriteString(st.Help.Render(help))
	b.WriteByte('\n')
}

// RunReview walks every task of the file in a full-screen prompt and
// applies the decisions on exit. Quitting partway commits what was
// decided; tasks never reached stay in place. The caller saves the
// file and archives the returned Outcome.Archived tasks.
func RunReview(ctx context.Context, f *todo.File, st Styles) (*todo.Outcome, error) {
	if !IsTTY(os.Stdout) {
		return nil, fmt.Errorf("review requires a TTY")
	}

	session := todo.NewSession(f)
	if session.Done() {
		return session.Commit(), nil
	}

	program := tea.NewProgram(newReviewModel(session, st), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("review session: %w", err)
	}
	return session.Commit(), nil
}

// IsTTY reports whether w is attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
