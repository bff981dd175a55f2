package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/nibzard/ldr-go/internal/todo"
	"github.com/nibzard/ldr-go/internal/ui"
)

// reviewCommand walks the whole todo file one task at a time and
// applies the decisions made in the session: prioritized tasks move
// to the top, archived tasks go to today's archive entry, kept tasks
// stay put. Quitting partway applies the decisions made so far.
func (a *app) reviewCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ldr review", flag.ContinueOnError)
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return usageErrorf("review: unexpected arguments: %v", fs.Args())
	}

	f, err := a.loadTodo()
	if err != nil {
		return err
	}
	if f == nil || f.IsEmpty() {
		fmt.Println(a.styles.Notice.Render("No notes to review."))
		return nil
	}

	outcome, err := ui.RunReview(ctx, f, a.styles)
	if err != nil {
		return err
	}

	if len(outcome.Archived) > 0 {
		archiveDoc, err := a.loadArchive()
		if err != nil {
			return err
		}
		archiveDoc.AddItemsForDate(time.Now().Format(dateLayout), todo.DefaultList, outcome.Archived)
		if err := archiveDoc.Save(a.cfg.ArchiveFile); err != nil {
			return err
		}
	}
	if outcome.Reviewed > 0 {
		if err := f.Save(a.cfg.TodoFile); err != nil {
			return err
		}
	}

	fmt.Println(a.styles.Success.Render(fmt.Sprintf("✓ Reviewed %d task(s)", outcome.Reviewed)))
	if len(outcome.Prioritized) > 0 {
		fmt.Println(a.styles.Success.Render(fmt.Sprintf("✓ Prioritized %d task(s)", len(outcome.Prioritized))))
		for _, task := range outcome.Prioritized {
			fmt.Println("  " + a.styles.Accent.Render(task.Text))
		}
	}
	if len(outcome.Archived) > 0 {
		fmt.Println(a.styles.Success.Render(fmt.Sprintf("✓ Archived %d item(s)", len(outcome.Archived))))
		for _, task := range outcome.Archived {
			fmt.Println("  " + a.styles.Danger.Render(task.Text))
		}
	}
	return nil
}
