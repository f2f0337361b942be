// Package git reads repository information from a local checkout: the
// origin URL, normalised to a browsable https address, and the branch
// currently checked out. It never touches the network.
package git
