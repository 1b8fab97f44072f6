package model

import (
	"fmt"
	"strings"
)

// State is the state of an issue
type State int

const (
	StateUnknown State = iota
	StateOpen
	StateClosed
)

// ParseState maps the forge state field to a State. Matching is case-sensitive;
// anything other than "open" or "closed" is StateUnknown.
func ParseState(s string) State {
	switch strings.TrimSpace(s) {
	case "open":
		return StateOpen
	case "closed":
		return StateClosed
	default:
		return StateUnknown
	}
}

// String returns the state name, which is also its directory name on disk
func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Comment is a single comment on an issue
type Comment struct {
	Author string
	Body   string
}

func (c Comment) String() string {
	return fmt.Sprintf("%s by %s", c.Body, c.Author)
}

// Issue is an issue with its labels and comments
type Issue struct {
	Author   string
	Title    string
	Body     string
	State    State
	Labels   []string
	Comments []Comment
}

// NewIssue creates an issue, parsing state with ParseState
func NewIssue(author, title, body, state string) Issue {
	return Issue{
		Author: author,
		Title:  title,
		Body:   body,
		State:  ParseState(state),
	}
}

// AddLabel appends a label
func (i *Issue) AddLabel(label string) {
	i.Labels = append(i.Labels, label)
}

func (i Issue) String() string {
	return fmt.Sprintf("%s by %s", i.Title, i.Author)
}

// Render returns the issue as written to its backup file:
//
//	# <title>
//	by <author>
//	Labels:<label>,<label>,
//
//	<body>
//
//	Comments:
//	<comment>
//
// The Labels line is left out when there are no labels and the Comments block
// when there are no comments.
func (i Issue) Render() string {
	var b strings.Builder

	_, _ = fmt.Fprintf(&b, "# %s\nby %s", i.Title, i.Author)

	if len(i.Labels) > 0 {
		b.WriteString("\nLabels:")

		for _, label := range i.Labels {
			b.WriteString(label)
			b.WriteString(",")
		}
	}

	_, _ = fmt.Fprintf(&b, "\n\n%s", i.Body)

	if len(i.Comments) > 0 {
		b.WriteString("\n\nComments:\n")
	}

	for _, c := range i.Comments {
		b.WriteString(c.String())
		b.WriteString("\n")
	}

	return b.String()
}
