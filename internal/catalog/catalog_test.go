package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
)

func TestRead_Success(t *testing.T) {
	input := strings.Join([]string{
		"course code,course description,semester taught,taught by",
		"CS101,Intro to machine learning and neural networks,Fall,Dr. Li",
		"MKT200,Principles of marketing,Winter,Dr. Okafor",
	}, "\n")

	courses, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, "CS101", courses[0].Code)
	assert.Equal(t, "Intro to machine learning and neural networks", courses[0].Description)
	assert.Equal(t, "Fall", courses[0].Semester)
	assert.Equal(t, "Dr. Li", courses[0].Instructor)
	assert.Equal(t, "MKT200", courses[1].Code)
}

func TestRead_HeaderCaseAndSpacing(t *testing.T) {
	input := strings.Join([]string{
		"Course Code, Course Description , Semester Taught,Taught By",
		"CS101,Intro course,Fall,Dr. Li",
	}, "\n")

	courses, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS101", courses[0].Code)
	assert.Equal(t, "Intro course", courses[0].Description)
}

func TestRead_ExtraColumnsIgnored(t *testing.T) {
	input := strings.Join([]string{
		"credits,course code,course description,semester taught,taught by,campus",
		"3,CS101,Intro course,Fall,Dr. Li,North",
	}, "\n")

	courses, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS101", courses[0].Code)
	assert.Equal(t, "Dr. Li", courses[0].Instructor)
}

func TestRead_MissingColumn(t *testing.T) {
	input := strings.Join([]string{
		"course code,semester taught,taught by",
		"CS101,Fall,Dr. Li",
	}, "\n")

	courses, err := Read(strings.NewReader(input))
	assert.ErrorIs(t, err, domain.ErrCatalogSchema)
	assert.Contains(t, err.Error(), ColDescription)
	assert.Nil(t, courses)
}

func TestRead_EmptyFile(t *testing.T) {
	courses, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrCatalogSchema)
	assert.Nil(t, courses)
}

func TestRead_ShortRowPassesThrough(t *testing.T) {
	// Hand-edited files often drop empty trailing fields. The row is
	// kept; the ingester decides whether it is usable.
	input := strings.Join([]string{
		"course code,course description,semester taught,taught by",
		"CS101,Intro course",
	}, "\n")

	courses, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS101", courses[0].Code)
	assert.Empty(t, courses[0].Semester)
	assert.Empty(t, courses[0].Instructor)
}

func TestRead_EmptyFieldsNotValidatedHere(t *testing.T) {
	input := strings.Join([]string{
		"course code,course description,semester taught,taught by",
		",Orphaned description,Fall,Dr. Li",
	}, "\n")

	courses, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Empty(t, courses[0].Code)
}

func TestLoad_MissingFile(t *testing.T) {
	courses, err := Load("does-not-exist.csv")
	assert.Error(t, err)
	assert.Nil(t, courses)
}
