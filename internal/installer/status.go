package installer

import (
	"path"
	"path/filepath"
)

// State describes where a manifest entry stands for a project.
type State string

const (
	StateInstalled State = "installed"
	StateAvailable State = "available"
	StateMissing   State = "missing"
)

// EntryStatus is the state of one manifest entry.
type EntryStatus struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	State    State    `json:"state"`
	Path     string   `json:"path"`
}

// Status reports, without writing anything, which manifest entries are
// installed in the project, which the package can still install, and which
// the package does not ship. A file present at its destination counts as
// installed even if the package lacks it.
func Status(opts Options) ([]EntryStatus, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	statuses := make([]EntryStatus, 0, len(opts.Manifest))
	for _, e := range opts.Manifest {
		rel := filepath.Join(e.Category.DestDir(), e.Name)
		st := EntryStatus{
			Name:     e.Name,
			Category: e.Category,
			Path:     filepath.ToSlash(rel),
		}

		exists, err := destExists(filepath.Join(opts.ProjectDir, rel))
		if err != nil {
			return nil, err
		}
		if exists {
			st.State = StateInstalled
		} else {
			ok, err := sourceExists(opts.Source, path.Join(e.Category.SourceDir(), e.Name))
			if err != nil {
				return nil, err
			}
			st.State = StateMissing
			if ok {
				st.State = StateAvailable
			}
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}
