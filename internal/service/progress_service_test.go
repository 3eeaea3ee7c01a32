package service

import (
	"testing"

	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/testutil"
	"learning_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestContent_Ownership(t *testing.T) {
	e := newEnv(t)
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	other := testutil.CreateUser(t, e.db, "other", model.Teacher)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")

	_, err := e.contents.Create(teacher.ID, ContentRequest{CourseID: course.ID, Title: "Intro", ContentType: "podcast"})
	assert.ErrorIs(t, err, util.ErrValidation)

	_, err = e.contents.Create(other.ID, ContentRequest{CourseID: course.ID, Title: "Intro", ContentType: model.ContentVideo})
	assert.ErrorIs(t, err, util.ErrForbidden)

	content, err := e.contents.Create(teacher.ID, ContentRequest{
		CourseID:    course.ID,
		Title:       "Intro",
		ContentType: model.ContentVideo,
		ContentData: datatypes.JSON(`"https://video.example.com/intro"`),
	})
	require.NoError(t, err)

	_, err = e.contents.Update(other.ID, content.ID, ContentRequest{Title: "Mine now"})
	assert.ErrorIs(t, err, util.ErrForbidden)
	assert.ErrorIs(t, e.contents.Delete(other.ID, content.ID), util.ErrForbidden)

	order := 3
	updated, err := e.contents.Update(teacher.ID, content.ID, ContentRequest{Title: "Welcome", Order: &order})
	require.NoError(t, err)
	assert.Equal(t, "Welcome", updated.Title)
	assert.Equal(t, 3, updated.Order)
	assert.Equal(t, model.ContentVideo, updated.ContentType)
}

func TestProgress_IdempotentAndPercentage(t *testing.T) {
	e := newEnv(t)
	teacher := testutil.CreateUser(t, e.db, "teacher", model.Teacher)
	student := testutil.CreateUser(t, e.db, "student", model.Student)
	course := testutil.CreateCourse(t, e.db, teacher, "Go 101")

	var ids []string
	for _, title := range []string{"one", "two", "three"} {
		c, err := e.contents.Create(teacher.ID, ContentRequest{CourseID: course.ID, Title: title, ContentType: model.ContentArticle})
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	created, err := e.progress.MarkComplete(student.ID, CompleteRequest{CourseID: course.ID, ContentID: ids[0]})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = e.progress.MarkComplete(student.ID, CompleteRequest{CourseID: course.ID, ContentID: ids[0]})
	require.NoError(t, err)
	assert.False(t, created)

	completion, err := e.progress.Completed(student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{ids[0]}, completion.CompletedContentIDs)
	assert.Equal(t, 33, completion.Progress)

	_, err = e.progress.MarkComplete(student.ID, CompleteRequest{CourseID: "other-course", ContentID: ids[1]})
	assert.ErrorIs(t, err, util.ErrNotFound)

	// deleting content drops its progress rows too
	require.NoError(t, e.contents.Delete(teacher.ID, ids[0]))
	completion, err = e.progress.Completed(student.ID, course.ID)
	require.NoError(t, err)
	assert.Empty(t, completion.CompletedContentIDs)
	assert.Equal(t, 0, completion.Progress)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, percentage(0, 0))
	assert.Equal(t, 0, percentage(3, 0))
	assert.Equal(t, 67, percentage(2, 3))
	assert.Equal(t, 100, percentage(3, 3))
	assert.Equal(t, 100, percentage(5, 3))
}
