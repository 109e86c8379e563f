package glhost

// releaser collects cleanup steps as resources are acquired and runs them
// newest first.
type releaser []func()

func (r *releaser) push(f func()) {
	*r = append(*r, f)
}

// release runs every step once; later calls do nothing.
func (r *releaser) release() {
	steps := *r
	*r = nil
	for i := len(steps) - 1; i >= 0; i-- {
		steps[i]()
	}
}
