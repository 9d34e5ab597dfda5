package menus

import (
	"io"
	"strconv"
	"strings"

	"kmaint/internal/menu"
	"kmaint/internal/repo"
	"kmaint/internal/ui"
)

// rollbackWindow is how many commits back a rollback can reach.
const rollbackWindow = 5

// Rollback lists a repository's recent commits and resets to one of
// them. Each managed repository gets its own instance.
type Rollback struct {
	menu.Crumb
	d       *Deps
	name    string
	dir     string
	commits []repo.Commit
	loadErr error
}

func NewRollback(d *Deps, name, dir string) *Rollback {
	m := &Rollback{d: d, name: name, dir: dir}
	m.refresh()
	return m
}

func (m *Rollback) refresh() {
	m.commits, m.loadErr = m.d.Repos.RecentCommits(m.d.Ctx, m.dir, rollbackWindow+1)
}

func (m *Rollback) Name() string { return "rollback:" + m.name }

func (m *Rollback) Footer() menu.FooterKind { return menu.FooterBack }

func (m *Rollback) Body(w io.Writer) {
	b := ui.NewBox(w, m.d.Palette)
	b.Top()
	b.Title(" [ Rollback: "+displayName(m.name)+" ] ", m.d.Palette.Yellow)
	b.Divider()
	b.Rowf("Repository: %s", m.dir)

	switch {
	case m.loadErr != nil:
		b.Blank()
		b.Row("Cannot read the git history:")
		b.Rowf(" %s", m.loadErr)
	case len(m.commits) < 2:
		b.Blank()
		b.Row("Nothing to roll back.")
	default:
		b.Rowf("Currently on: %s %s", m.commits[0].Hash, m.commits[0].Subject)
		b.Blank()
		b.Row("Roll back to:")
		for i, c := range m.commits[1:] {
			b.Rowf(" %d) %s %s", i+1, c.Hash, c.Subject)
		}
	}
}

func (m *Rollback) Options() menu.Table {
	t := menu.Table{}
	if m.loadErr != nil || len(m.commits) < 2 {
		return t
	}
	for i := range m.commits[1:] {
		n := i + 1
		t[strconv.Itoa(n)] = menu.Call(func() error {
			if err := m.d.Repos.RollBack(m.d.Ctx, m.name, m.dir, n); err != nil {
				return err
			}
			m.refresh()
			return nil
		})
	}
	return t
}

func displayName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
