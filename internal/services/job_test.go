package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/autoapply/unified-service/internal/models"
	"github.com/autoapply/unified-service/internal/services"
)

func strPtr(s string) *string { return &s }

func TestJobService_CreateJob(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		params        services.CreateJobParams
		storeErr      error
		wantErr       error
		wantStatus    string
		wantSource    string
		wantAppliedAt bool
	}{
		{
			name:       "defaults to SAVED and MANUAL",
			params:     services.CreateJobParams{Title: "Engineer", Company: "Acme"},
			wantStatus: models.StatusSaved,
			wantSource: models.SourceManual,
		},
		{
			name: "creating as APPLIED stamps applied_at",
			params: services.CreateJobParams{
				Title:      "Engineer",
				Company:    "Acme",
				Status:     strPtr(models.StatusApplied),
				SourceType: strPtr(models.SourceExtension),
			},
			wantStatus:    models.StatusApplied,
			wantSource:    models.SourceExtension,
			wantAppliedAt: true,
		},
		{
			name:    "invalid status rejected",
			params:  services.CreateJobParams{Title: "Engineer", Company: "Acme", Status: strPtr("PENDING")},
			wantErr: services.ErrInvalidStatus,
		},
		{
			name:     "store error",
			params:   services.CreateJobParams{Title: "Engineer", Company: "Acme"},
			storeErr: errors.New("db error"),
			wantErr:  errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := services.NewMockJobStore(ctrl)
			mockCache := services.NewMockStatsCache(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)

			if tt.wantErr == nil || tt.storeErr != nil {
				mockStore.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, job *models.JobApplicationDB) (*models.JobApplicationDB, error) {
						if tt.storeErr != nil {
							return nil, tt.storeErr
						}
						assert.Equal(t, tt.wantStatus, job.Status)
						assert.Equal(t, tt.wantSource, job.SourceType)
						if tt.wantAppliedAt {
							assert.NotNil(t, job.AppliedAt)
							assert.WithinDuration(t, time.Now(), *job.AppliedAt, 5*time.Second)
						} else {
							assert.Nil(t, job.AppliedAt)
						}
						created := *job
						created.JobID = uuid.New()
						return &created, nil
					})
			}
			if tt.wantErr == nil {
				mockCache.EXPECT().Invalidate(gomock.Any(), userID).Return(nil)
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			svc := services.NewJobService(mockStore, mockCache, mockKafka)

			created, err := svc.CreateJob(context.Background(), userID, tt.params)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID, created.UserID)
				assert.Equal(t, tt.wantStatus, created.Status)
			}
		})
	}
}

func TestJobService_GetJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockJobStore(ctrl)
	svc := services.NewJobService(mockStore, nil, nil)

	userID := uuid.New()
	jobID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockStore.EXPECT().
			GetByIDAndUserID(gomock.Any(), jobID, userID).
			Return(&models.JobApplicationDB{JobID: jobID, UserID: userID}, nil)

		job, err := svc.GetJob(context.Background(), jobID, userID)
		assert.NoError(t, err)
		assert.Equal(t, jobID, job.JobID)
	})

	t.Run("someone else's job is not found", func(t *testing.T) {
		mockStore.EXPECT().
			GetByIDAndUserID(gomock.Any(), jobID, userID).
			Return(nil, nil)

		job, err := svc.GetJob(context.Background(), jobID, userID)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, job)
	})
}

func TestJobService_GetJobsByStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockJobStore(ctrl)
	svc := services.NewJobService(mockStore, nil, nil)

	userID := uuid.New()

	t.Run("valid status", func(t *testing.T) {
		mockStore.EXPECT().
			ListByUserIDAndStatus(gomock.Any(), userID, models.StatusOffer).
			Return([]models.JobApplicationDB{{Status: models.StatusOffer}}, nil)

		jobs, err := svc.GetJobsByStatus(context.Background(), userID, models.StatusOffer)
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("invalid status", func(t *testing.T) {
		jobs, err := svc.GetJobsByStatus(context.Background(), userID, "HIRED")
		assert.ErrorIs(t, err, services.ErrInvalidStatus)
		assert.Nil(t, jobs)
	})
}

func TestJobService_UpdateJob(t *testing.T) {
	userID := uuid.New()
	jobID := uuid.New()

	existing := func() *models.JobApplicationDB {
		return &models.JobApplicationDB{
			JobID:      jobID,
			UserID:     userID,
			Title:      "Engineer",
			Company:    "Acme",
			Status:     models.StatusSaved,
			SourceType: models.SourceManual,
		}
	}

	tests := []struct {
		name        string
		current     *models.JobApplicationDB
		params      services.UpdateJobParams
		wantErr     error
		wantPublish bool
		check       func(t *testing.T, updated *models.JobApplicationDB)
	}{
		{
			name:    "nil fields keep stored values",
			current: existing(),
			params:  services.UpdateJobParams{Notes: strPtr("recruiter called")},
			check: func(t *testing.T, updated *models.JobApplicationDB) {
				assert.Equal(t, "Engineer", updated.Title)
				assert.Equal(t, "Acme", updated.Company)
				assert.Equal(t, models.StatusSaved, updated.Status)
				assert.Equal(t, "recruiter called", *updated.Notes)
			},
		},
		{
			name:        "first transition to APPLIED stamps applied_at and publishes",
			current:     existing(),
			params:      services.UpdateJobParams{Status: strPtr(models.StatusApplied)},
			wantPublish: true,
			check: func(t *testing.T, updated *models.JobApplicationDB) {
				assert.Equal(t, models.StatusApplied, updated.Status)
				assert.NotNil(t, updated.AppliedAt)
			},
		},
		{
			name: "repeated APPLIED keeps the original applied_at and stays quiet",
			current: func() *models.JobApplicationDB {
				job := existing()
				job.Status = models.StatusApplied
				stamp := time.Now().Add(-48 * time.Hour)
				job.AppliedAt = &stamp
				return job
			}(),
			params: services.UpdateJobParams{Status: strPtr(models.StatusApplied)},
			check: func(t *testing.T, updated *models.JobApplicationDB) {
				assert.WithinDuration(t, time.Now().Add(-48*time.Hour), *updated.AppliedAt, 5*time.Second)
			},
		},
		{
			name:    "invalid status rejected",
			current: existing(),
			params:  services.UpdateJobParams{Status: strPtr("PENDING")},
			wantErr: services.ErrInvalidStatus,
		},
		{
			name:    "missing job",
			current: nil,
			params:  services.UpdateJobParams{Notes: strPtr("x")},
			wantErr: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := services.NewMockJobStore(ctrl)
			mockCache := services.NewMockStatsCache(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)

			mockStore.EXPECT().
				GetByIDAndUserID(gomock.Any(), jobID, userID).
				Return(tt.current, nil)

			if tt.wantErr == nil {
				mockStore.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, job *models.JobApplicationDB) (*models.JobApplicationDB, error) {
						return job, nil
					})
				mockCache.EXPECT().Invalidate(gomock.Any(), userID).Return(nil)
				if tt.wantPublish {
					mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
				}
			}

			svc := services.NewJobService(mockStore, mockCache, mockKafka)

			updated, err := svc.UpdateJob(context.Background(), jobID, userID, tt.params)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, updated)
				return
			}
			assert.NoError(t, err)
			tt.check(t, updated)
		})
	}
}

func TestJobService_DeleteJob(t *testing.T) {
	userID := uuid.New()
	jobID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := services.NewMockJobStore(ctrl)
		mockCache := services.NewMockStatsCache(ctrl)
		mockStore.EXPECT().Delete(gomock.Any(), jobID, userID).Return(true, nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), userID).Return(nil)

		svc := services.NewJobService(mockStore, mockCache, nil)
		assert.NoError(t, svc.DeleteJob(context.Background(), jobID, userID))
	})

	t.Run("missing job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := services.NewMockJobStore(ctrl)
		mockStore.EXPECT().Delete(gomock.Any(), jobID, userID).Return(false, nil)

		svc := services.NewJobService(mockStore, nil, nil)
		assert.ErrorIs(t, svc.DeleteJob(context.Background(), jobID, userID), services.ErrNotFound)
	})
}

func TestJobService_GetDashboardStats(t *testing.T) {
	userID := uuid.New()

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := services.NewMockJobStore(ctrl)
		mockCache := services.NewMockStatsCache(ctrl)
		cached := &models.DashboardStats{TotalApplied: 7}
		mockCache.EXPECT().Get(gomock.Any(), userID).Return(cached, nil)

		svc := services.NewJobService(mockStore, mockCache, nil)

		stats, err := svc.GetDashboardStats(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, cached, stats)
	})

	t.Run("cache miss aggregates and caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := services.NewMockJobStore(ctrl)
		mockCache := services.NewMockStatsCache(ctrl)
		mockCache.EXPECT().Get(gomock.Any(), userID).Return(nil, errors.New("cache miss"))
		mockStore.EXPECT().CountByStatus(gomock.Any(), userID).Return(map[string]int64{
			models.StatusSaved:     4,
			models.StatusApplied:   3,
			models.StatusInterview: 2,
			models.StatusOffer:     1,
		}, nil)
		mockCache.EXPECT().
			Set(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, stats *models.DashboardStats) error {
				assert.Equal(t, int64(6), stats.TotalApplied)
				return nil
			})

		svc := services.NewJobService(mockStore, mockCache, nil)

		stats, err := svc.GetDashboardStats(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, int64(6), stats.TotalApplied)
		assert.Equal(t, int64(2), stats.TotalInterviews)
		assert.Equal(t, int64(1), stats.TotalOffers)
		assert.Equal(t, int64(0), stats.TotalRejected)
		assert.Equal(t, int64(4), stats.StatusBreakdown[models.StatusSaved])
	})

	t.Run("bucketing", func(t *testing.T) {
		tests := []struct {
			name           string
			counts         map[string]int64
			wantApplied    int64
			wantInterviews int64
			wantOffers     int64
			wantRejected   int64
		}{
			{
				name:   "empty",
				counts: map[string]int64{},
			},
			{
				name:        "saved rows are not applied",
				counts:      map[string]int64{models.StatusSaved: 5},
				wantApplied: 0,
			},
			{
				name: "interview pipeline covers three statuses",
				counts: map[string]int64{
					models.StatusScreening:     1,
					models.StatusInterview:     2,
					models.StatusInterviewDone: 3,
				},
				wantApplied:    6,
				wantInterviews: 6,
			},
			{
				name: "full funnel",
				counts: map[string]int64{
					models.StatusSaved:     10,
					models.StatusApplied:   5,
					models.StatusScreening: 3,
					models.StatusOffer:     2,
					models.StatusRejected:  4,
					models.StatusWithdrawn: 1,
				},
				wantApplied:    15,
				wantInterviews: 3,
				wantOffers:     2,
				wantRejected:   4,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				mockStore := services.NewMockJobStore(ctrl)
				mockStore.EXPECT().CountByStatus(gomock.Any(), userID).Return(tt.counts, nil)

				svc := services.NewJobService(mockStore, nil, nil)

				stats, err := svc.GetDashboardStats(context.Background(), userID)
				assert.NoError(t, err)
				assert.Equal(t, tt.wantApplied, stats.TotalApplied)
				assert.Equal(t, tt.wantInterviews, stats.TotalInterviews)
				assert.Equal(t, tt.wantOffers, stats.TotalOffers)
				assert.Equal(t, tt.wantRejected, stats.TotalRejected)
			})
		}
	})
}
