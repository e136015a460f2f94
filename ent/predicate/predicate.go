// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)

// StudyTask is the predicate function for studytask builders.
type StudyTask func(*sql.Selector)
