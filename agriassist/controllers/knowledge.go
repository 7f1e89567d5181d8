// agriassist/controllers/knowledge.go
package controllers

import (
	"agriassist/agriassist/sources/psql/dao"
	"agriassist/agriassist/sources/psql/models"
	"agriassist/agriassist/sources/storage"
	"agriassist/agriassist/utils/logging"
	"agriassist/agriassist/utils/types"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidAction      = errors.New("Invalid action")
	ErrNotFound           = errors.New("knowledge record not found")
	ErrStorageUnavailable = errors.New("file storage is not configured")
)

// maxInlineContent caps how much of an uploaded text file is echoed back.
const maxInlineContent = 1 << 20

type FileStore interface {
	Bucket() string
	EnsureBucket(ctx context.Context) (bool, error)
	ListFiles(ctx context.Context) ([]storage.FileInfo, error)
	UploadFile(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
}

type KnowledgeController struct {
	knowledgeDAO *dao.KnowledgeDAO
	files        FileStore
}

// NewKnowledgeController accepts a nil FileStore; file actions then fail
// with ErrStorageUnavailable.
func NewKnowledgeController(knowledgeDAO *dao.KnowledgeDAO, files FileStore) *KnowledgeController {
	return &KnowledgeController{knowledgeDAO: knowledgeDAO, files: files}
}

// HandleAction serves the action-dispatched /chatbot-data endpoint.
func (c *KnowledgeController) HandleAction(ctx context.Context, req types.ChatbotDataRequest) (map[string]any, error) {
	switch req.Action {
	case "create_bucket":
		if c.files == nil {
			return nil, ErrStorageUnavailable
		}
		created, err := c.files.EnsureBucket(ctx)
		if err != nil {
			return nil, err
		}
		if !created {
			return map[string]any{"message": "Bucket already exists"}, nil
		}
		logging.AppLogger.Info("Created knowledge bucket", zap.String("bucket", c.files.Bucket()))
		return map[string]any{"message": "Bucket created successfully", "data": map[string]string{"name": c.files.Bucket()}}, nil

	case "list_files":
		if c.files == nil {
			return nil, ErrStorageUnavailable
		}
		files, err := c.files.ListFiles(ctx)
		if err != nil {
			return nil, err
		}
		if files == nil {
			files = []storage.FileInfo{}
		}
		return map[string]any{"files": files}, nil

	case "add_knowledge":
		rec, err := c.Create(ctx, types.KnowledgeInput{
			Keywords:   req.Keywords,
			ResponseEN: req.ResponseEN,
			ResponseHI: req.ResponseHI,
			ResponseTE: req.ResponseTE,
			ResponseKN: req.ResponseKN,
			ResponseML: req.ResponseML,
			Source:     req.Source,
			Content:    req.Content,
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"message": "Knowledge added successfully", "data": []*models.KnowledgeRecord{rec}}, nil

	default:
		return nil, ErrInvalidAction
	}
}

func (c *KnowledgeController) List(ctx context.Context) ([]models.KnowledgeRecord, error) {
	records, err := c.knowledgeDAO.ListNewest(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.KnowledgeRecord{}
	}
	return records, nil
}

func (c *KnowledgeController) Get(ctx context.Context, id uuid.UUID) (*models.KnowledgeRecord, error) {
	rec, err := c.knowledgeDAO.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (c *KnowledgeController) Create(ctx context.Context, in types.KnowledgeInput) (*models.KnowledgeRecord, error) {
	rec := &models.KnowledgeRecord{
		Keywords:   strings.TrimSpace(in.Keywords),
		ResponseEN: strings.TrimSpace(in.ResponseEN),
		ResponseHI: blankToNil(in.ResponseHI),
		ResponseTE: blankToNil(in.ResponseTE),
		ResponseKN: blankToNil(in.ResponseKN),
		ResponseML: blankToNil(in.ResponseML),
		Source:     blankToNil(in.Source),
		Content:    blankToNil(in.Content),
	}
	if err := c.knowledgeDAO.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *KnowledgeController) Update(ctx context.Context, id uuid.UUID, in types.KnowledgeUpdate) (*models.KnowledgeRecord, error) {
	if _, err := c.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Keywords != nil {
		updates["keywords"] = strings.TrimSpace(*in.Keywords)
	}
	if in.ResponseEN != nil {
		updates["response_en"] = strings.TrimSpace(*in.ResponseEN)
	}
	optional := map[string]*string{
		"response_hi": in.ResponseHI,
		"response_te": in.ResponseTE,
		"response_kn": in.ResponseKN,
		"response_ml": in.ResponseML,
		"source":      in.Source,
		"content":     in.Content,
	}
	for col, v := range optional {
		if v != nil {
			// an explicit empty string clears the column
			updates[col] = blankToNil(v)
		}
	}

	if len(updates) > 0 {
		if err := c.knowledgeDAO.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return c.Get(ctx, id)
}

func (c *KnowledgeController) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := c.Get(ctx, id); err != nil {
		return err
	}
	return c.knowledgeDAO.Delete(ctx, id)
}

type UploadResult struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Size    int64   `json:"size"`
	Content *string `json:"content,omitempty"`
}

// UploadFile stores an admin's source document. Plain text and JSON files
// are echoed back so the form can prefill the content field.
func (c *KnowledgeController) UploadFile(ctx context.Context, name string, r io.Reader, size int64, contentType string) (*UploadResult, error) {
	if c.files == nil {
		return nil, ErrStorageUnavailable
	}

	inline := isInlineType(contentType) && size <= maxInlineContent
	var buf bytes.Buffer
	if inline {
		r = io.TeeReader(r, &buf)
	}

	key, err := c.files.UploadFile(ctx, name, r, size, contentType)
	if err != nil {
		return nil, err
	}

	res := &UploadResult{Key: key, Name: name, Size: size}
	if inline {
		text := buf.String()
		res.Content = &text
	}
	return res, nil
}

func isInlineType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return ct == "text/plain" || ct == "application/json"
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
