package services

import (
	"context"
	"errors"
	"testing"

	"github.com/eduplat/courses/internal/app/auth"
	"github.com/eduplat/courses/internal/app/models"
	"github.com/eduplat/courses/internal/app/models/dto"
	"github.com/eduplat/courses/internal/pkg/apperrors"
	"github.com/eduplat/courses/internal/pkg/userdir"
)

func newJoinRequestService(courses *fakeCourseStore, requests *fakeJoinRequestStore, accesses *fakeAccessStore, userDir *fakeUserDirectory) JoinRequestService {
	authz := auth.NewAuthorizationService(courses, accesses)
	return NewJoinRequestService(requests, courses, authz, userDir)
}

func TestSendJoinRequestIdempotent(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	requests := &fakeJoinRequestStore{}
	service := newJoinRequestService(courses, requests, newFakeAccessStore(), &fakeUserDirectory{})

	created, err := service.SendJoinRequest(context.Background(), 1, 4)
	if err != nil {
		t.Fatalf("send join request: %v", err)
	}
	if !created {
		t.Error("expected first request to be created")
	}

	created, err = service.SendJoinRequest(context.Background(), 1, 4)
	if err != nil {
		t.Fatalf("send join request again: %v", err)
	}
	if created {
		t.Error("expected repeated request to reuse the existing one")
	}

	if len(requests.requests) != 1 {
		t.Errorf("expected a single stored request, got %d", len(requests.requests))
	}
}

func TestSendJoinRequestMissingCourse(t *testing.T) {
	service := newJoinRequestService(newFakeCourseStore(), &fakeJoinRequestStore{}, newFakeAccessStore(), &fakeUserDirectory{})

	_, err := service.SendJoinRequest(context.Background(), 42, 4)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestListJoinRequestsOwnerOnly(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	requests := &fakeJoinRequestStore{requests: []*models.JoinRequest{
		{ID: 1, CourseID: 1, UserID: 4},
	}}
	service := newJoinRequestService(courses, requests, newFakeAccessStore(), &fakeUserDirectory{})

	if _, err := service.ListJoinRequests(context.Background(), 1, 5); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound for non-owner, got %v", err)
	}
}

func TestListJoinRequestsBatchesIdentityLookup(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	requests := &fakeJoinRequestStore{requests: []*models.JoinRequest{
		{ID: 1, CourseID: 1, UserID: 4},
		{ID: 2, CourseID: 1, UserID: 6},
		{ID: 3, CourseID: 1, UserID: 4},
		{ID: 4, CourseID: 2, UserID: 8},
	}}
	userDir := &fakeUserDirectory{users: map[int64]userdir.Identity{
		4: {ID: 4, Username: "alice"},
		6: {ID: 6, Username: "bob"},
	}}
	service := newJoinRequestService(courses, requests, newFakeAccessStore(), userDir)

	listed, err := service.ListJoinRequests(context.Background(), 1, 9)
	if err != nil {
		t.Fatalf("list join requests: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 requests for course 1, got %d", len(listed))
	}
	if userDir.batchN != 1 {
		t.Errorf("expected a single directory batch, got %d", userDir.batchN)
	}
	if len(userDir.lastBatch) != 2 {
		t.Errorf("expected 2 distinct user ids in the batch, got %v", userDir.lastBatch)
	}
	if listed[0].User == nil || listed[0].User.Username != "alice" {
		t.Errorf("expected requester identity resolved, got %+v", listed[0].User)
	}
	if listed[1].User == nil || listed[1].User.Username != "bob" {
		t.Errorf("expected requester identity resolved, got %+v", listed[1].User)
	}
}

func TestListJoinRequestsSurvivesDirectoryFailure(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	requests := &fakeJoinRequestStore{requests: []*models.JoinRequest{
		{ID: 1, CourseID: 1, UserID: 4},
	}}
	userDir := &fakeUserDirectory{err: errors.New("directory down")}
	service := newJoinRequestService(courses, requests, newFakeAccessStore(), userDir)

	listed, err := service.ListJoinRequests(context.Background(), 1, 9)
	if err != nil {
		t.Fatalf("list join requests: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 request, got %d", len(listed))
	}
	if listed[0].User != nil {
		t.Errorf("expected unresolved identity, got %+v", listed[0].User)
	}
}

func TestAnswerJoinRequestsResolvesBatch(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	accesses := newFakeAccessStore()
	requests := &fakeJoinRequestStore{
		accesses: accesses,
		requests: []*models.JoinRequest{
			{ID: 1, CourseID: 1, UserID: 4},
			{ID: 2, CourseID: 1, UserID: 6},
		},
	}
	service := newJoinRequestService(courses, requests, accesses, &fakeUserDirectory{})

	err := service.AnswerJoinRequests(context.Background(), 1, 9, &dto.AnswerJoinRequestsRequest{
		Requests: []dto.JoinRequestDecision{
			{ID: 1, Accept: true},
			{ID: 2, Accept: false},
		},
	})
	if err != nil {
		t.Fatalf("answer join requests: %v", err)
	}

	if len(requests.requests) != 0 {
		t.Errorf("expected all answered requests removed, got %d left", len(requests.requests))
	}
	if granted, _ := accesses.HasAccess(context.Background(), 1, 4); !granted {
		t.Error("expected accepted requester to gain access")
	}
	if granted, _ := accesses.HasAccess(context.Background(), 1, 6); granted {
		t.Error("expected rejected requester to stay without access")
	}
}

func TestAnswerJoinRequestsIgnoresForeignCourseIDs(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	accesses := newFakeAccessStore()
	requests := &fakeJoinRequestStore{
		accesses: accesses,
		requests: []*models.JoinRequest{
			{ID: 1, CourseID: 2, UserID: 4},
		},
	}
	service := newJoinRequestService(courses, requests, accesses, &fakeUserDirectory{})

	err := service.AnswerJoinRequests(context.Background(), 1, 9, &dto.AnswerJoinRequestsRequest{
		Requests: []dto.JoinRequestDecision{{ID: 1, Accept: true}},
	})
	if err != nil {
		t.Fatalf("answer join requests: %v", err)
	}

	if len(requests.requests) != 1 {
		t.Errorf("expected the foreign course request untouched, got %d", len(requests.requests))
	}
	if granted, _ := accesses.HasAccess(context.Background(), 2, 4); granted {
		t.Error("expected no access granted through a foreign course id")
	}
}

func TestAnswerJoinRequestsOwnerOnly(t *testing.T) {
	courses := newFakeCourseStore()
	courses.put(&models.Course{ID: 1, Name: "Math", InstructorID: 9, Code: "9abcdefghi"})
	service := newJoinRequestService(courses, &fakeJoinRequestStore{}, newFakeAccessStore(), &fakeUserDirectory{})

	err := service.AnswerJoinRequests(context.Background(), 1, 5, &dto.AnswerJoinRequestsRequest{
		Requests: []dto.JoinRequestDecision{{ID: 1, Accept: true}},
	})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound for non-owner, got %v", err)
	}
}
