package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/eduplat/courses/internal/app/models"
	"github.com/eduplat/courses/internal/app/repositories"
	"github.com/eduplat/courses/internal/pkg/userdir"
)

type fakeCourseStore struct {
	courses    map[int64]*models.Course
	nextID     int64
	createErrs []error
	createN    int
	listRows   []repositories.CourseWithLessonCount
	listTotal  int64
	updated    map[string]interface{}
	deletedID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course)}
}

func (f *fakeCourseStore) put(course *models.Course) *models.Course {
	if course.ID == 0 {
		f.nextID++
		course.ID = f.nextID
	} else if course.ID > f.nextID {
		f.nextID = course.ID
	}
	f.courses[course.ID] = course
	return course
}

func (f *fakeCourseStore) Create(ctx context.Context, course *models.Course) (int64, error) {
	f.createN++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return 0, err
		}
	}
	for _, existing := range f.courses {
		if existing.Code == course.Code {
			return 0, errors.New("duplicate code not surfaced as constraint error")
		}
	}
	stored := *course
	f.put(&stored)
	return stored.ID, nil
}

func (f *fakeCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, nil
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseStore) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	for _, course := range f.courses {
		if course.Code == code {
			copied := *course
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCourseStore) List(ctx context.Context, offset uint64, limit int) ([]repositories.CourseWithLessonCount, int64, error) {
	return f.listRows, f.listTotal, nil
}

func (f *fakeCourseStore) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	f.updated = fields
	return nil
}

func (f *fakeCourseStore) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	delete(f.courses, id)
	return nil
}

type fakeLessonStore struct {
	lessons []*models.Lesson
	nextID  int64
	updated map[string]interface{}
}

func (f *fakeLessonStore) Create(ctx context.Context, lesson *models.Lesson) (int64, error) {
	f.nextID++
	stored := *lesson
	stored.ID = f.nextID
	f.lessons = append(f.lessons, &stored)
	return stored.ID, nil
}

func (f *fakeLessonStore) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	var result []*models.Lesson
	for _, lesson := range f.lessons {
		if lesson.CourseID == courseID {
			result = append(result, lesson)
		}
	}
	return result, nil
}

func (f *fakeLessonStore) GetByID(ctx context.Context, courseID, lessonID int64) (*models.Lesson, error) {
	for _, lesson := range f.lessons {
		if lesson.ID == lessonID && lesson.CourseID == courseID {
			copied := *lesson
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeLessonStore) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	f.updated = fields
	return nil
}

func (f *fakeLessonStore) Delete(ctx context.Context, id int64) error {
	for i, lesson := range f.lessons {
		if lesson.ID == id {
			f.lessons = append(f.lessons[:i], f.lessons[i+1:]...)
			return nil
		}
	}
	return nil
}

type pair struct {
	courseID int64
	userID   int64
}

type fakeAccessStore struct {
	grants map[pair]bool
}

func newFakeAccessStore() *fakeAccessStore {
	return &fakeAccessStore{grants: make(map[pair]bool)}
}

func (f *fakeAccessStore) GetOrCreate(ctx context.Context, courseID, userID int64) (bool, error) {
	key := pair{courseID, userID}
	if f.grants[key] {
		return false, nil
	}
	f.grants[key] = true
	return true, nil
}

func (f *fakeAccessStore) HasAccess(ctx context.Context, courseID, userID int64) (bool, error) {
	return f.grants[pair{courseID, userID}], nil
}

type fakeJoinRequestStore struct {
	requests []*models.JoinRequest
	nextID   int64
	accesses *fakeAccessStore
}

func (f *fakeJoinRequestStore) GetOrCreate(ctx context.Context, courseID, userID int64) (*models.JoinRequest, bool, error) {
	for _, request := range f.requests {
		if request.CourseID == courseID && request.UserID == userID {
			return request, false, nil
		}
	}
	f.nextID++
	request := &models.JoinRequest{ID: f.nextID, CourseID: courseID, UserID: userID}
	f.requests = append(f.requests, request)
	return request, true, nil
}

func (f *fakeJoinRequestStore) GetByCourseID(ctx context.Context, courseID int64) ([]*models.JoinRequest, error) {
	var result []*models.JoinRequest
	for _, request := range f.requests {
		if request.CourseID == courseID {
			result = append(result, request)
		}
	}
	return result, nil
}

// ResolveBatch mirrors the repository contract: only requests matching both
// the id list and the course are touched, accepted ones become grants, and
// every matched request is removed.
func (f *fakeJoinRequestStore) ResolveBatch(ctx context.Context, courseID int64, requestIDs []int64, accepted map[int64]bool) error {
	inBatch := make(map[int64]bool, len(requestIDs))
	for _, id := range requestIDs {
		inBatch[id] = true
	}

	var remaining []*models.JoinRequest
	for _, request := range f.requests {
		if inBatch[request.ID] && request.CourseID == courseID {
			if accepted[request.ID] && f.accesses != nil {
				if _, err := f.accesses.GetOrCreate(ctx, request.CourseID, request.UserID); err != nil {
					return err
				}
			}
			continue
		}
		remaining = append(remaining, request)
	}
	f.requests = remaining
	return nil
}

type fakeUserDirectory struct {
	users     map[int64]userdir.Identity
	err       error
	batchN    int
	lastBatch []int64
}

func (f *fakeUserDirectory) GetUser(ctx context.Context, userID int64) (*userdir.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	identity, ok := f.users[userID]
	if !ok {
		return nil, errors.New("user not found")
	}
	return &identity, nil
}

func (f *fakeUserDirectory) GetUsers(ctx context.Context, userIDs []int64) ([]userdir.Identity, error) {
	f.batchN++
	f.lastBatch = userIDs
	if f.err != nil {
		return nil, f.err
	}
	var result []userdir.Identity
	for _, id := range userIDs {
		if identity, ok := f.users[id]; ok {
			result = append(result, identity)
		}
	}
	return result, nil
}

type fakeFileStore struct {
	saved   int
	deleted []string
}

func (f *fakeFileStore) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	f.saved++
	return fmt.Sprintf("%s/stored-%d.mp4", subPath, f.saved), nil
}

func (f *fakeFileStore) DeleteFile(fileRef string) error {
	f.deleted = append(f.deleted, fileRef)
	return nil
}
