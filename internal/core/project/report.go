package project

// Report lists what a Materialize call produced.
type Report struct {
	Root    string   // absolute project directory
	Created []string // artifacts in creation order, relative to Root
	Failed  string   // artifact whose step failed; empty on success
}

// Completed reports whether every step succeeded.
func (r *Report) Completed() bool {
	return r.Failed == ""
}

func (r *Report) created(artifact string) {
	r.Created = append(r.Created, artifact)
}
