package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/eduplat/courses/internal/app/auth"
	"github.com/eduplat/courses/internal/app/models"
	"github.com/eduplat/courses/internal/app/models/dto"
	"github.com/eduplat/courses/internal/pkg/apperrors"
)

func newLessonService(courses *fakeCourseStore, lessons *fakeLessonStore, accesses *fakeAccessStore, files *fakeFileStore) LessonService {
	authz := auth.NewAuthorizationService(courses, accesses)
	return NewLessonService(lessons, courses, authz, files, true)
}

func newGatedLessonService(courses *fakeCourseStore, lessons *fakeLessonStore, accesses *fakeAccessStore) LessonService {
	authz := auth.NewAuthorizationService(courses, accesses)
	return NewLessonService(lessons, courses, authz, &fakeFileStore{}, false)
}

func intPtr(n int) *int { return &n }

func TestCreateLessonRequiresExistingCourse(t *testing.T) {
	service := newLessonService(newFakeCourseStore(), &fakeLessonStore{}, newFakeAccessStore(), &fakeFileStore{})

	_, err := service.CreateLesson(context.Background(), 42, &dto.CreateLessonRequest{
		Name:    "Intro",
		Content: "Welcome",
	}, nil)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestCreateLessonDefaultsNumber(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	lessons := &fakeLessonStore{}
	service := newLessonService(courses, lessons, newFakeAccessStore(), &fakeFileStore{})

	created, err := service.CreateLesson(context.Background(), 1, &dto.CreateLessonRequest{
		Name:    "Intro",
		Content: "Welcome",
	}, nil)
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	if created.Number != 1 {
		t.Errorf("expected number to default to 1, got %d", created.Number)
	}
	if created.CourseID != 1 {
		t.Errorf("expected course id 1, got %d", created.CourseID)
	}
	if created.Video != nil {
		t.Errorf("expected no video, got %v", *created.Video)
	}
}

func TestCreateLessonDoesNotCheckOwnership(t *testing.T) {
	// Lesson creation only verifies the course exists; there is no owner
	// check at this layer. Instructor-only routing is the gate in front of
	// it. This test pins that behavior so a change to it is deliberate.
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	lessons := &fakeLessonStore{}
	service := newLessonService(courses, lessons, newFakeAccessStore(), &fakeFileStore{})

	created, err := service.CreateLesson(context.Background(), 1, &dto.CreateLessonRequest{
		Name:    "Intro",
		Content: "Welcome",
	}, nil)
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	if created.CourseID != 1 {
		t.Errorf("expected lesson attached to course 1, got %d", created.CourseID)
	}
}

func TestCreateLessonStoresVideo(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	files := &fakeFileStore{}
	service := newLessonService(courses, &fakeLessonStore{}, newFakeAccessStore(), files)

	created, err := service.CreateLesson(context.Background(), 1, &dto.CreateLessonRequest{
		Name:    "Intro",
		Content: "Welcome",
		Number:  intPtr(3),
	}, &multipart.FileHeader{Filename: "intro.mp4"})
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	if files.saved != 1 {
		t.Errorf("expected one stored file, got %d", files.saved)
	}
	if created.Video == nil || *created.Video != "lesson-videos/stored-1.mp4" {
		t.Errorf("expected stored video reference, got %v", created.Video)
	}
	if created.Number != 3 {
		t.Errorf("expected number 3, got %d", created.Number)
	}
}

func TestListLessonsReturnsCourseLessonsOnly(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	lessons := &fakeLessonStore{lessons: []*models.Lesson{
		{ID: 1, Name: "First", Number: 1, CourseID: 1},
		{ID: 2, Name: "Other course", Number: 1, CourseID: 2},
		{ID: 3, Name: "Second", Number: 2, CourseID: 1},
	}}
	service := newLessonService(courses, lessons, newFakeAccessStore(), &fakeFileStore{})

	// Open listing: any requester may read the lesson list.
	listed, err := service.ListLessons(context.Background(), 1, 4)
	if err != nil {
		t.Fatalf("list lessons: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(listed))
	}
	for _, lesson := range listed {
		if lesson.CourseID != 1 {
			t.Errorf("expected only course 1 lessons, got %+v", lesson)
		}
	}
}

func TestListLessonsMissingCourse(t *testing.T) {
	service := newLessonService(newFakeCourseStore(), &fakeLessonStore{}, newFakeAccessStore(), &fakeFileStore{})

	_, err := service.ListLessons(context.Background(), 42, 4)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestListLessonsGatedByEnrollment(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	lessons := &fakeLessonStore{lessons: []*models.Lesson{
		{ID: 1, Name: "Intro", Number: 1, CourseID: 1},
	}}
	accesses := newFakeAccessStore()
	service := newGatedLessonService(courses, lessons, accesses)

	if _, err := service.ListLessons(context.Background(), 1, 4); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound before enrollment, got %v", err)
	}

	if _, err := accesses.GetOrCreate(context.Background(), 1, 4); err != nil {
		t.Fatalf("grant access: %v", err)
	}
	if _, err := service.ListLessons(context.Background(), 1, 4); err != nil {
		t.Fatalf("list lessons after enrollment: %v", err)
	}

	// The owner never needs a grant.
	if _, err := service.ListLessons(context.Background(), 1, 9); err != nil {
		t.Fatalf("list lessons as owner: %v", err)
	}
}

func TestGetLessonRequiresEnrollment(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	lessons := &fakeLessonStore{lessons: []*models.Lesson{
		{ID: 1, Name: "Intro", Number: 1, CourseID: 1},
	}}
	accesses := newFakeAccessStore()
	service := newLessonService(courses, lessons, accesses, &fakeFileStore{})

	if _, err := service.GetLesson(context.Background(), 1, 1, 4); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound before enrollment, got %v", err)
	}

	if _, err := accesses.GetOrCreate(context.Background(), 1, 4); err != nil {
		t.Fatalf("grant access: %v", err)
	}

	lesson, err := service.GetLesson(context.Background(), 1, 1, 4)
	if err != nil {
		t.Fatalf("get lesson after enrollment: %v", err)
	}
	if lesson.Name != "Intro" {
		t.Errorf("expected lesson Intro, got %q", lesson.Name)
	}
}

func TestGetLessonOwnerNeedsNoGrant(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	lessons := &fakeLessonStore{lessons: []*models.Lesson{
		{ID: 1, Name: "Intro", Number: 1, CourseID: 1},
	}}
	service := newLessonService(courses, lessons, newFakeAccessStore(), &fakeFileStore{})

	if _, err := service.GetLesson(context.Background(), 1, 1, 9); err != nil {
		t.Fatalf("expected owner to read lesson without a grant, got %v", err)
	}
}

func TestGetLessonWrongCourse(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	courses.put(&models.Course{ID: 2, Name: "Physics", InstructorID: 9, Code: "9jklmnopqr"})
	lessons := &fakeLessonStore{lessons: []*models.Lesson{
		{ID: 1, Name: "Intro", Number: 1, CourseID: 2},
	}}
	service := newLessonService(courses, lessons, newFakeAccessStore(), &fakeFileStore{})

	// Lesson 1 belongs to course 2, so it must not resolve under course 1.
	if _, err := service.GetLesson(context.Background(), 1, 1, 9); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestUpdateLessonMergedNotFound(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	lessons := &fakeLessonStore{lessons: []*models.Lesson{
		{ID: 1, Name: "Intro", Number: 1, CourseID: 1},
	}}
	service := newLessonService(courses, lessons, newFakeAccessStore(), &fakeFileStore{})

	_, errForeign := service.UpdateLesson(context.Background(), 1, 1, 5, &dto.UpdateLessonRequest{Name: strPtr("New")}, nil)
	_, errMissing := service.UpdateLesson(context.Background(), 99, 1, 5, &dto.UpdateLessonRequest{Name: strPtr("New")}, nil)

	if !errors.Is(errForeign, apperrors.ErrResourceNotFound) {
		t.Errorf("expected ErrResourceNotFound for non-owner, got %v", errForeign)
	}
	if !errors.Is(errMissing, apperrors.ErrResourceNotFound) {
		t.Errorf("expected ErrResourceNotFound for missing course, got %v", errMissing)
	}
}

func TestUpdateLessonAppliesOnlyProvidedFields(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	lessons := &fakeLessonStore{lessons: []*models.Lesson{
		{ID: 1, Name: "Bad name", Content: "Keep me", Number: 1, CourseID: 1},
	}}
	service := newLessonService(courses, lessons, newFakeAccessStore(), &fakeFileStore{})

	updated, err := service.UpdateLesson(context.Background(), 1, 1, 9, &dto.UpdateLessonRequest{
		Name:   strPtr("Good name"),
		Number: intPtr(5),
	}, nil)
	if err != nil {
		t.Fatalf("update lesson: %v", err)
	}
	if updated.Name != "Good name" || updated.Number != 5 {
		t.Errorf("unexpected response: %+v", updated)
	}
	if _, ok := lessons.updated["content"]; ok {
		t.Error("expected content untouched")
	}
	if lessons.updated["name"] != "Good name" {
		t.Errorf("expected name column update, got %+v", lessons.updated)
	}
}

func TestUpdateLessonReplacesVideo(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	oldVideo := "lesson-videos/old.mp4"
	lessons := &fakeLessonStore{lessons: []*models.Lesson{
		{ID: 1, Name: "Intro", Number: 1, CourseID: 1, Video: &oldVideo},
	}}
	files := &fakeFileStore{}
	service := newLessonService(courses, lessons, newFakeAccessStore(), files)

	updated, err := service.UpdateLesson(context.Background(), 1, 1, 9, &dto.UpdateLessonRequest{}, &multipart.FileHeader{Filename: "new.mp4"})
	if err != nil {
		t.Fatalf("update lesson: %v", err)
	}
	if updated.Video == nil || *updated.Video != "lesson-videos/stored-1.mp4" {
		t.Errorf("expected new video reference, got %v", updated.Video)
	}
	if len(files.deleted) != 1 || files.deleted[0] != oldVideo {
		t.Errorf("expected old video deleted, got %v", files.deleted)
	}
}

func TestDeleteLessonOwnerOnly(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	video := "lesson-videos/intro.mp4"
	lessons := &fakeLessonStore{lessons: []*models.Lesson{
		{ID: 1, Name: "Intro", Number: 1, CourseID: 1, Video: &video},
	}}
	files := &fakeFileStore{}
	service := newLessonService(courses, lessons, newFakeAccessStore(), files)

	if err := service.DeleteLesson(context.Background(), 1, 1, 5); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound for non-owner, got %v", err)
	}

	if err := service.DeleteLesson(context.Background(), 1, 1, 9); err != nil {
		t.Fatalf("delete lesson: %v", err)
	}
	if len(lessons.lessons) != 0 {
		t.Errorf("expected lesson removed, got %d left", len(lessons.lessons))
	}
	if len(files.deleted) != 1 || files.deleted[0] != video {
		t.Errorf("expected video deleted, got %v", files.deleted)
	}
}
