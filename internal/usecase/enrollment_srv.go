package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type EnrollmentService interface {
	GetEnrollment(ctx context.Context, userID int) (*response.EnrollmentResponse, error)
	UpsertEnrollment(ctx context.Context, userID int, req *request.EnrollmentRequest) (*response.EnrollmentResponse, error)
}

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	log            *zap.Logger
}

func NewEnrollmentService(enrollmentRepo repository.EnrollmentRepository, log *zap.Logger) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		log:            log.With(zap.String("service", "enrollment")),
	}
}

func (s *enrollmentService) GetEnrollment(ctx context.Context, userID int) (*response.EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, utils.NotFoundError("enrollment not found")
	}

	resp := response.EnrollmentToResponse(enrollment)
	return &resp, nil
}

func (s *enrollmentService) UpsertEnrollment(ctx context.Context, userID int, req *request.EnrollmentRequest) (*response.EnrollmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Enrollment validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError(errs)
	}

	birthday, err := time.Parse(time.DateOnly, req.Birthday)
	if err != nil {
		return nil, utils.BadRequestError("birthday must be YYYY-MM-DD")
	}

	enrollment := &entity.Enrollment{
		UserID:   userID,
		Name:     req.Name,
		CPF:      req.CPF,
		Birthday: birthday,
		Phone:    req.Phone,
	}
	err = s.enrollmentRepo.Upsert(ctx, enrollment)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, utils.ConflictError("cpf already registered")
	}
	if err != nil {
		return nil, fmt.Errorf("upsert enrollment: %w", err)
	}

	s.log.Info("Enrollment saved", zap.Int("enrollment_id", enrollment.ID), zap.Int("user_id", userID))

	resp := response.EnrollmentToResponse(enrollment)
	return &resp, nil
}
