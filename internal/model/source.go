// Package model defines the data structures shared by the reducer.
package model

// Path represents a file system path.
type Path string

// Testcase is a JavaScript file submitted for minimization.
type Testcase struct {
	Path Path
	// Name is where the minimized testcase goes, relative to the output directory.
	Name Path
	Hash string
	// Source is the current text of the testcase.
	Source string
}

// Size returns the length of the testcase source in bytes.
func (t Testcase) Size() int {
	return len(t.Source)
}
