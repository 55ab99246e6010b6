package domain

import "fmt"

// Course is a single catalog entry. The catalog file is the source of
// truth; a course is immutable once ingested for a given index build.
type Course struct {
	Code        string
	Description string
	Semester    string
	Instructor  string
}

// Document builds the text that gets embedded for this course. The field
// order and labels are fixed; changing them invalidates an existing index.
func (c Course) Document() string {
	return fmt.Sprintf("Course: %s. Description: %s. Semester: %s. Instructor: %s.",
		c.Code, c.Description, c.Semester, c.Instructor)
}

// CourseMatch is a retrieved course with its similarity score.
// Score is the cosine similarity reported by the vector index, so higher
// is closer; matches are always ordered by descending score.
type CourseMatch struct {
	Course Course
	Score  float32

	// Explanation is an optional model-written sentence on why the course
	// fits the request. Empty unless explanations are enabled.
	Explanation string
}
