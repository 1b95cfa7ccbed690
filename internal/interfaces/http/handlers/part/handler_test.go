package part

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quartermaster/internal/application/part/dto"
	parttestutil "quartermaster/internal/application/part/testutil"
	"quartermaster/internal/application/part/usecases"
	"quartermaster/internal/interfaces/http/handlers/testutil"
)

func jsonUnmarshal(data json.RawMessage, v any) error {
	return json.Unmarshal(data, v)
}

func newTestHandler() (*PartHandler, *parttestutil.MockPartRepository) {
	repo := parttestutil.NewMockPartRepository()
	log := parttestutil.NewMockLogger()

	handler := NewPartHandler(
		usecases.NewCreatePartUseCase(repo, log),
		usecases.NewGetPartUseCase(repo, log),
		usecases.NewListPartsUseCase(repo, log),
		usecases.NewUpdatePartUseCase(repo, log),
		usecases.NewDeletePartUseCase(repo, log),
		usecases.NewMarkPartUnusableUseCase(repo, log),
		usecases.NewRestorePartUseCase(repo, log),
	)

	return handler, repo
}

func createPart(t *testing.T, h *PartHandler, barcode, serial string) *dto.PartDTO {
	t.Helper()

	c, w := testutil.NewTestContext(http.MethodPost, "/part", gin.H{
		"type":          "CPU",
		"barcode":       barcode,
		"serial_number": serial,
		"brand":         "Intel",
		"model":         "i7-12700K",
	})
	h.CreatePart(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var created dto.PartDTO
	require.NoError(t, jsonUnmarshal(resp.Data, &created))
	return &created
}

func TestPartHandler_CreatePart(t *testing.T) {
	h, _ := newTestHandler()

	created := createPart(t, h, "BC-1001", "SN-1001")

	assert.Contains(t, created.ID, "prt_")
	assert.Equal(t, "CPU", created.Type)
	assert.Equal(t, "active", created.Status)
	assert.False(t, created.Assigned)
}

func TestPartHandler_CreatePart_Unusable(t *testing.T) {
	h, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/part", gin.H{
		"type":            "Monitor",
		"barcode":         "BC-1002",
		"serial_number":   "SN-1002",
		"brand":           "Dell",
		"model":           "U2723QE",
		"status":          "unusable",
		"unusable_reason": "dead on arrival",
	})
	h.CreatePart(c)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var created dto.PartDTO
	require.NoError(t, jsonUnmarshal(resp.Data, &created))
	assert.Equal(t, "unusable", created.Status)
	require.NotNil(t, created.UnusableReason)
	assert.Equal(t, "dead on arrival", *created.UnusableReason)
}

func TestPartHandler_CreatePart_ReasonWithoutUnusableStatus(t *testing.T) {
	h, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/part", gin.H{
		"type":            "CPU",
		"barcode":         "BC-1003",
		"serial_number":   "SN-1003",
		"brand":           "Intel",
		"model":           "i7-12700K",
		"unusable_reason": "scratched",
	})
	h.CreatePart(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, resp.Errors, "unusable_reason")
}

func TestPartHandler_CreatePart_FieldValidation(t *testing.T) {
	h, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/part", gin.H{})
	h.CreatePart(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "type")
	assert.Contains(t, resp.Errors, "barcode")
	assert.Contains(t, resp.Errors, "serial_number")
}

func TestPartHandler_CreatePart_DuplicateBarcode(t *testing.T) {
	h, _ := newTestHandler()
	createPart(t, h, "BC-2001", "SN-2001")

	c, w := testutil.NewTestContext(http.MethodPost, "/part", gin.H{
		"type":          "CPU",
		"barcode":       "BC-2001",
		"serial_number": "SN-2002",
		"brand":         "Intel",
		"model":         "i5-12400",
	})
	h.CreatePart(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, resp.Errors, "barcode")
}

func TestPartHandler_GetPart(t *testing.T) {
	h, _ := newTestHandler()
	created := createPart(t, h, "BC-3001", "SN-3001")

	c, w := testutil.NewTestContext(http.MethodGet, "/part/"+created.ID, nil)
	testutil.SetURLParam(c, "id", created.ID)
	h.GetPart(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var got dto.PartDTO
	require.NoError(t, jsonUnmarshal(resp.Data, &got))
	assert.Equal(t, created.ID, got.ID)
}

func TestPartHandler_GetPart_InvalidID(t *testing.T) {
	h, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/part/sys_bogus", nil)
	testutil.SetURLParam(c, "id", "sys_bogus")
	h.GetPart(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPartHandler_GetPart_NotFound(t *testing.T) {
	h, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/part/prt_missing00001", nil)
	testutil.SetURLParam(c, "id", "prt_missing00001")
	h.GetPart(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPartHandler_ListParts_FilterByStatus(t *testing.T) {
	h, _ := newTestHandler()
	createPart(t, h, "BC-4001", "SN-4001")
	target := createPart(t, h, "BC-4002", "SN-4002")

	// Retire one part so the filter has something to exclude.
	c, w := testutil.NewTestContext(http.MethodPatch, "/part/"+target.ID+"/unusable", gin.H{
		"reason": "bent pins",
	})
	testutil.SetURLParam(c, "id", target.ID)
	h.MarkUnusable(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/part", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "unusable"})
	h.ListParts(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var result usecases.ListPartsResult
	require.NoError(t, jsonUnmarshal(resp.Data, &result))
	require.Equal(t, 1, result.Total)
	assert.Equal(t, target.ID, result.Parts[0].ID)
}

func TestPartHandler_MarkUnusable_RequiresReason(t *testing.T) {
	h, _ := newTestHandler()
	created := createPart(t, h, "BC-5001", "SN-5001")

	c, w := testutil.NewTestContext(http.MethodPatch, "/part/"+created.ID+"/unusable", gin.H{})
	testutil.SetURLParam(c, "id", created.ID)
	h.MarkUnusable(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, resp.Errors, "reason")
}

func TestPartHandler_Restore(t *testing.T) {
	h, _ := newTestHandler()
	created := createPart(t, h, "BC-6001", "SN-6001")

	c, w := testutil.NewTestContext(http.MethodPatch, "/part/"+created.ID+"/unusable", gin.H{
		"reason": "dead fan",
	})
	testutil.SetURLParam(c, "id", created.ID)
	h.MarkUnusable(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodPatch, "/part/"+created.ID+"/restore", nil)
	testutil.SetURLParam(c, "id", created.ID)
	h.Restore(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var restored dto.PartDTO
	require.NoError(t, jsonUnmarshal(resp.Data, &restored))
	assert.Equal(t, "active", restored.Status)
	assert.Nil(t, restored.UnusableReason)
}

func TestPartHandler_DeletePart(t *testing.T) {
	h, _ := newTestHandler()
	created := createPart(t, h, "BC-7001", "SN-7001")

	c, w := testutil.NewTestContext(http.MethodDelete, "/part/"+created.ID, nil)
	testutil.SetURLParam(c, "id", created.ID)
	h.DeletePart(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/part/"+created.ID, nil)
	testutil.SetURLParam(c, "id", created.ID)
	h.GetPart(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
