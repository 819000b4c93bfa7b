// Package gameapi defines the operation vocabulary shared with the
// turn-based game platform: the closed set of state mutations a move
// is made of, and the VerifyMove/VerifyMoveDone request pair.
package gameapi

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Operation is a single state mutation within a move. The set of
// implementations is closed: Set, SetTurn, SetVisibility, Shuffle,
// AttemptChangeTokens and EndGame.
type Operation interface {
	op()
	String() string
}

// Set assigns a named field of the public state
type Set struct {
	Key   string
	Value any
}

// SetTurn assigns the next player to act
type SetTurn struct {
	PlayerID int
}

// SetVisibility reveals a card key to specific players.
// A nil VisibleTo means visible to everyone; an empty non-nil slice
// means visible to no one.
type SetVisibility struct {
	Key       string
	VisibleTo []int
}

// Shuffle invokes the platform randomness primitive on card keys
type Shuffle struct {
	Keys []string
}

// AttemptChangeTokens transfers tokens in and out of the table pot
type AttemptChangeTokens struct {
	Debits  map[int]int
	Credits map[int]int
}

// EndGame signals the end of the hand and names the winner
type EndGame struct {
	WinnerID int
}

func (Set) op()                 {}
func (SetTurn) op()             {}
func (SetVisibility) op()       {}
func (Shuffle) op()             {}
func (AttemptChangeTokens) op() {}
func (EndGame) op()             {}

func (o Set) String() string {
	return fmt.Sprintf("Set(%s, %v)", o.Key, o.Value)
}

func (o SetTurn) String() string {
	return fmt.Sprintf("SetTurn(%d)", o.PlayerID)
}

func (o SetVisibility) String() string {
	if o.VisibleTo == nil {
		return fmt.Sprintf("SetVisibility(%s, ALL)", o.Key)
	}
	return fmt.Sprintf("SetVisibility(%s, %v)", o.Key, o.VisibleTo)
}

func (o Shuffle) String() string {
	return fmt.Sprintf("Shuffle(%s..%s)", o.Keys[0], o.Keys[len(o.Keys)-1])
}

func (o AttemptChangeTokens) String() string {
	return fmt.Sprintf("AttemptChangeTokens(%s, %s)",
		formatTokenMap(o.Debits), formatTokenMap(o.Credits))
}

func (o EndGame) String() string {
	return fmt.Sprintf("EndGame(%d)", o.WinnerID)
}

func formatTokenMap(m map[int]int) string {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d:%d", id, m[id])
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Equal reports whether two operations are identical in type and
// content. Set values are normalized before comparison so that
// equivalent representations (typed slices vs decoded JSON) match.
func Equal(a, b Operation) bool {
	switch a := a.(type) {
	case Set:
		b, ok := b.(Set)
		return ok && a.Key == b.Key &&
			reflect.DeepEqual(Normalize(a.Value), Normalize(b.Value))
	case SetTurn:
		b, ok := b.(SetTurn)
		return ok && a == b
	case SetVisibility:
		b, ok := b.(SetVisibility)
		if !ok || a.Key != b.Key {
			return false
		}
		// nil means visible to all and is distinct from empty
		if (a.VisibleTo == nil) != (b.VisibleTo == nil) {
			return false
		}
		if len(a.VisibleTo) != len(b.VisibleTo) {
			return false
		}
		for i := range a.VisibleTo {
			if a.VisibleTo[i] != b.VisibleTo[i] {
				return false
			}
		}
		return true
	case Shuffle:
		b, ok := b.(Shuffle)
		if !ok || len(a.Keys) != len(b.Keys) {
			return false
		}
		for i := range a.Keys {
			if a.Keys[i] != b.Keys[i] {
				return false
			}
		}
		return true
	case AttemptChangeTokens:
		b, ok := b.(AttemptChangeTokens)
		return ok && reflect.DeepEqual(a.Debits, b.Debits) &&
			reflect.DeepEqual(a.Credits, b.Credits)
	case EndGame:
		b, ok := b.(EndGame)
		return ok && a == b
	default:
		return false
	}
}

// EqualLists reports whether two operation lists match element for
// element, in order
func EqualLists(a, b []Operation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Diff returns a description of the first difference between an
// expected and a claimed operation list, for diagnostics
func Diff(expected, claimed []Operation) string {
	for i := 0; i < len(expected) && i < len(claimed); i++ {
		if !Equal(expected[i], claimed[i]) {
			return fmt.Sprintf("operation %d: expected %s, claimed %s",
				i, expected[i], claimed[i])
		}
	}
	if len(expected) != len(claimed) {
		return fmt.Sprintf("operation count: expected %d, claimed %d",
			len(expected), len(claimed))
	}
	return ""
}
