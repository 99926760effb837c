package prefs

// QueryMemory stores the last submitted query under the last_query key of
// the prefs file at Path (empty means the default path).
type QueryMemory struct {
	Path string
}

// Remember overwrites the stored query, keeping the other preferences.
func (m QueryMemory) Remember(query string) error {
	return Update(m.Path, func(p *Prefs) {
		p.LastQuery = query
	})
}

// Recall returns the stored query, or "" when nothing has been remembered.
func (m QueryMemory) Recall() (string, error) {
	p, err := Load(m.Path)
	if err != nil {
		return "", err
	}
	return p.LastQuery, nil
}
