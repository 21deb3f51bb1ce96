package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"paperrate/sessions"
	"paperrate/testhelpers"
)

func uploadRequest(t *testing.T, session *sessions.Session, fileName string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/entries/import", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("HX-Request", "true")
	return testhelpers.WithSession(req, SessionKey, session)
}

const importHeader = "Paper Type,Paper Size,Paper GSM,Paper Rate,Paper Cut Size,Rim Size,Billbook,Total Paper,Printing,Binding"

func TestHandleImportPage(t *testing.T) {
	req, _ := newSessionRequest(t, http.MethodGet, "/entries/import", "")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(req, rec)

	if err := HandleImportPage()(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"<!DOCTYPE html>",
		"Import Entries",
		`enctype="multipart/form-data"`,
		"/entries/import/template",
	)
}

func TestHandleImportUpload_CSV(t *testing.T) {
	_, session := testhelpers.NewTestSession(t)
	testhelpers.AddTestEntry(t, session.Entries, "Existing")

	csvData := strings.Join([]string{
		importHeader,
		"Maplitho,23x36,70,500,A4 (1/4),500,Bill Book,1000,200,100",
		"Art Paper,20x30,90,1000,Half (1/2),250,Register,500,0,0",
	}, "\n")
	req := uploadRequest(t, session, "entries.csv", []byte(csvData))
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(req, rec)

	if err := HandleImportUpload()(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if session.Entries.Len() != 3 {
		t.Fatalf("expected 3 entries after import, got %d", session.Entries.Len())
	}
	imported, _ := session.Entries.Get(1)
	if imported.PaperType != "Maplitho" || imported.FinalTotal != 550 {
		t.Errorf("unexpected imported entry %+v", imported)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "entries.csv: 2 rows, 2 imported, 0 with errors")
	if toast := parseToast(t, rec.Header().Get("HX-Trigger")); toast["message"] != "Imported 2 entries" {
		t.Errorf("unexpected toast %q", toast["message"])
	}
}

func TestHandleImportUpload_XLSX(t *testing.T) {
	_, session := testhelpers.NewTestSession(t)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, v := range strings.Split(importHeader, ",") {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, v)
	}
	for i, v := range []any{"Maplitho", "23x36", 70, 500, "A4 (1/4)", 500, "Bill Book", 1000, 200, 100} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, v)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	f.Close()

	req := uploadRequest(t, session, "entries.xlsx", buf.Bytes())
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(req, rec)

	if err := HandleImportUpload()(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if session.Entries.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", session.Entries.Len())
	}
	got, _ := session.Entries.Get(0)
	if got.ReqPaper != 250 || got.FinalTotal != 550 {
		t.Errorf("derived = %v / %v", got.ReqPaper, got.FinalTotal)
	}
}

func TestHandleImportUpload_RowErrorsImportNothing(t *testing.T) {
	_, session := testhelpers.NewTestSession(t)

	csvData := strings.Join([]string{
		importHeader,
		"Good,23x36,70,500,A4 (1/4),500,Bill Book,1000,200,100",
		"Bad,23x36,70,500,A3 (1/3),500,Bill Book,1000,200,100",
	}, "\n")
	req := uploadRequest(t, session, "entries.csv", []byte(csvData))
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(req, rec)

	if err := HandleImportUpload()(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if session.Entries.Len() != 0 {
		t.Errorf("expected nothing imported, got %d", session.Entries.Len())
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Nothing was imported",
		"<tr><td>3</td><td>Paper Cut Size</td><td>Unknown cut size</td></tr>",
	)
}

func TestHandleImportUpload_BadFiles(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		content  string
		want     string
	}{
		{"no_file", "", "", "No file was uploaded."},
		{"wrong_extension", "entries.txt", "hello", "unsupported file format"},
		{"header_only", "entries.csv", importHeader, "header row and at least one data row"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, session := testhelpers.NewTestSession(t)
			req := uploadRequest(t, session, tt.fileName, []byte(tt.content))
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(req, rec)

			if err := HandleImportUpload()(e); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			testhelpers.AssertHTMLContains(t, rec.Body.String(), tt.want)
			if session.Entries.Len() != 0 {
				t.Errorf("expected no entries, got %d", session.Entries.Len())
			}
		})
	}
}

func TestHandleImportTemplate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/entries/import/template", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(req, rec)

	if err := HandleImportTemplate()(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("unexpected Content-Type %q", ct)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("template is not valid Excel: %v", err)
	}
	defer f.Close()
	first, _ := f.GetCellValue(f.GetSheetName(0), "A1")
	if !strings.HasPrefix(first, "Paper Type") {
		t.Errorf("A1 = %q, want Paper Type header", first)
	}
}
