package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	config "github.com/kamaubrian/hoops_academy/configs"
	"github.com/kamaubrian/hoops_academy/models"
	"github.com/kamaubrian/hoops_academy/utils"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

type reportRow struct {
	Name   string
	Status string
	Marked string
}

type coachRow struct {
	Name    string
	TimeIn  string
	TimeOut string
}

// GenerateSessionReport renders a printable attendance sheet for one
// session, converts it to PDF with headless Chrome and stores it on
// Cloudinary. Returns the public URL of the PDF.
func GenerateSessionReport(session models.TrainingSession) (string, error) {
	htmlData, err := renderReportHTML(session)
	if err != nil {
		return "", fmt.Errorf("failed to render report HTML: %w", err)
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		return "", fmt.Errorf("failed to generate PDF: %w", err)
	}

	return uploadReportToCloudinary(pdfBytes, session.ID.String())
}

func renderReportHTML(session models.TrainingSession) (string, error) {
	tmpl, err := template.ParseFiles("templates/session_report.html")
	if err != nil {
		return "", err
	}

	rows := make([]reportRow, 0, len(session.Attendance))
	for _, record := range session.Attendance {
		row := reportRow{
			Name:   record.Student.FullName(),
			Status: string(record.Status),
		}
		if record.MarkedAt != nil {
			row.Marked = utils.FormatTimestamp(*record.MarkedAt)
		}
		rows = append(rows, row)
	}

	coaches := make([]coachRow, 0, len(session.TimeRecords))
	for _, record := range session.TimeRecords {
		row := coachRow{Name: record.Coach.FullName()}
		if record.TimeIn != nil {
			row.TimeIn = utils.FormatTimestamp(*record.TimeIn)
		}
		if record.TimeOut != nil {
			row.TimeOut = utils.FormatTimestamp(*record.TimeOut)
		}
		coaches = append(coaches, row)
	}

	data := struct {
		BranchName string
		Date       string
		TimeRange  string
		Status     string
		Rows       []reportRow
		Coaches    []coachRow
		Generated  string
	}{
		BranchName: session.Branch.Name,
		Date:       session.Date.Format("01/02/2006"),
		TimeRange:  utils.FormatClock(session.StartTime) + " - " + utils.FormatClock(session.EndTime),
		Status:     string(session.Status),
		Rows:       rows,
		Coaches:    coaches,
		Generated:  utils.FormatTimestamp(time.Now()),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReportToCloudinary(fileBytes []byte, sessionID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("reports/%s_%s", sessionID, uuid.New().String()),
		Folder:       "hoops_academy_reports",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
