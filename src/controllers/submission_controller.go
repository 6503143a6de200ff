package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/services/submission"
	"Backend-FormFlow/src/services/uploads"
	"Backend-FormFlow/src/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmissionService is implemented by submission.Service.
type SubmissionService interface {
	Submit(ctx context.Context, in submission.SubmitInput) (*models.Submission, error)
	List(ctx context.Context, q models.SubmissionQuery) (*submission.ListResult, error)
	Get(ctx context.Context, id string) (*models.SubmissionDetail, error)
	ExportCSV(ctx context.Context, formID string, w io.Writer) error
}

// UploadStore is implemented by uploads.Service.
type UploadStore interface {
	Store(files map[string][]*multipart.FileHeader, save uploads.SaveFunc) (map[string]string, []string, error)
}

type SubmissionController struct {
	Submissions SubmissionService
	Uploads     UploadStore
}

func NewSubmissionController(subs SubmissionService, store UploadStore) *SubmissionController {
	return &SubmissionController{Submissions: subs, Uploads: store}
}

// SubmitForm godoc
// @Summary      Submit answers to a form
// @Description  JSON body, or multipart/form-data with formId, answers (JSON string) and files named after their fields
// @Tags         submissions
// @Accept       json,mpfd
// @Produce      json
// @Param        body body models.SubmitRequest true "Answers"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      429  {object}  models.ErrorResponse
// @Router       /submissions [post]
func (sc *SubmissionController) SubmitForm(c *fiber.Ctx) error {
	in := submission.SubmitInput{IP: c.IP()}

	if strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid multipart body: "+err.Error())
		}
		in.FormID = firstValue(form.Value, "formId")
		if raw := firstValue(form.Value, "answers"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &in.Answers); err != nil {
				return utils.HandleError(c, fiber.StatusBadRequest, "answers must be a JSON array")
			}
		}

		if msgs := utils.ValidateStruct(models.SubmitRequest{FormID: in.FormID}); msgs != nil {
			return utils.HandleValidationErrors(c, msgs, nil)
		}

		if len(form.File) > 0 {
			save := func(fh *multipart.FileHeader, path string) error {
				return c.SaveFile(fh, path)
			}
			in.Uploaded, in.Stored, err = sc.Uploads.Store(form.File, save)
			if err != nil {
				return respondError(c, "Error saving uploaded files", err)
			}
		}
	} else {
		var req models.SubmitRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
		}
		if msgs := utils.ValidateStruct(req); msgs != nil {
			return utils.HandleValidationErrors(c, msgs, nil)
		}
		in.FormID, in.Answers = req.FormID, req.Answers
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	sub, err := sc.Submissions.Submit(ctx, in)
	if err != nil {
		return respondError(c, "Error submitting form", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Form submitted successfully",
		"submissionId": sub.ID.Hex(),
	})
}

func firstValue(values map[string][]string, key string) string {
	if v := values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// GetSubmissions godoc
// @Summary      List submissions
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        formId     query  string  false  "Form ID"
// @Param        page       query  int     false  "Page"  default(1)
// @Param        limit      query  int     false  "Page size"  default(10)
// @Param        search     query  string  false  "Search answer values"
// @Param        dateFrom   query  string  false  "From date (YYYY-MM-DD)"
// @Param        dateTo     query  string  false  "To date, whole day included"
// @Param        sortBy     query  string  false  "submittedAt, createdAt, formVersion, ip or formTitle"
// @Param        sortOrder  query  string  false  "asc or desc"
// @Success      200  {object}  submission.ListResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /submissions [get]
func (sc *SubmissionController) GetSubmissions(c *fiber.Ctx) error {
	var q models.SubmissionQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := sc.Submissions.List(ctx, q)
	if err != nil {
		return respondError(c, "Error fetching submissions", err)
	}
	return c.JSON(res)
}

// GetSubmissionByID godoc
// @Summary      Get a submission with its current form
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  models.SubmissionDetail
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [get]
func (sc *SubmissionController) GetSubmissionByID(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	detail, err := sc.Submissions.Get(ctx, c.Params("id"))
	if err != nil {
		return respondError(c, "Error fetching submission", err)
	}
	return c.JSON(detail)
}

// ExportSubmissionsCSV godoc
// @Summary      Export a form's submissions as CSV
// @Tags         submissions
// @Produce      text/csv
// @Security     BearerAuth
// @Param        formId  query  string  true  "Form ID"
// @Success      200  {file}    file
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/export [get]
func (sc *SubmissionController) ExportSubmissionsCSV(c *fiber.Ctx) error {
	formID := c.Query("formId")

	ctx, cancel := context.WithTimeout(c.UserContext(), 30*time.Second)
	defer cancel()

	var buf bytes.Buffer
	if err := sc.Submissions.ExportCSV(ctx, formID, &buf); err != nil {
		return respondError(c, "Error exporting submissions", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="submissions-%s-%d.csv"`, formID, time.Now().UnixMilli()))
	return c.Send(buf.Bytes())
}
