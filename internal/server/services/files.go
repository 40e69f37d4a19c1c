package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/omccomas/terminal/internal/server/config"
	"github.com/omccomas/terminal/internal/server/models"
	"github.com/omccomas/terminal/internal/server/repositories/repomanager"
)

// FileService hands out short-lived presigned PUT URLs for the
// S3-compatible backend and records uploads once the client confirms them.
type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewFileService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *FileService {
	return &FileService{db: db, repomanager: m, config: cfg}
}

// randomStorageKey spreads objects by date so bucket listings stay sane.
func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("users/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *FileService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// PresignUpload returns the storage key and a presigned PUT URL valid for
// 15 minutes.
func (s *FileService) PresignUpload(ctx context.Context) (string, string, error) {

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := randomStorageKey()

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// Register records a completed upload as an owner-scoped file reference.
func (s *FileService) Register(ctx context.Context, userID, name, url string) (*models.File, error) {
	f := &models.File{UserID: userID, Name: name, URL: url}
	return s.repomanager.Files(s.db).Create(ctx, f)
}

func (s *FileService) List(ctx context.Context, userID string) ([]models.File, error) {
	return s.repomanager.Files(s.db).List(ctx, userID)
}

func (s *FileService) Get(ctx context.Context, userID, id string) (*models.File, error) {
	return s.repomanager.Files(s.db).GetByID(ctx, userID, id)
}

// Resolve finds the newest file with the given name, for `file getid`.
func (s *FileService) Resolve(ctx context.Context, userID, name string) (*models.File, error) {
	return s.repomanager.Files(s.db).GetByName(ctx, userID, name)
}
