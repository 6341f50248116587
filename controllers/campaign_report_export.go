package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/Anand-727/ShopSphere/config"
	"github.com/Anand-727/ShopSphere/models"
	"github.com/Anand-727/ShopSphere/utils"
)

type campaignReportRow struct {
	Campaign    models.Campaign
	MemberCount int
	Markdown    float64
}

type campaignReportSummary struct {
	TotalCampaigns  int
	ActiveCampaigns int
	TotalMembers    int
	TotalMarkdown   float64
}

// buildCampaignReport collects every campaign with its membership and the
// aggregate markdown (baseline minus current price summed over members still
// on sale).
func buildCampaignReport() ([]campaignReportRow, campaignReportSummary, error) {
	var campaigns []models.Campaign
	if err := config.DB.Preload("Products.Product").
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		return nil, campaignReportSummary{}, err
	}

	var rows []campaignReportRow
	var summary campaignReportSummary
	for i := range campaigns {
		row := campaignReportRow{Campaign: campaigns[i]}
		for _, member := range campaigns[i].Products {
			row.MemberCount++
			if member.Product.IsOnSale && member.Product.OriginalPrice != nil {
				markdown := *member.Product.OriginalPrice - member.Product.Price
				if markdown > 0 {
					row.Markdown += markdown
				}
			}
		}
		row.Markdown = utils.RoundMoney(row.Markdown)
		summary.TotalCampaigns++
		if campaigns[i].IsActive {
			summary.ActiveCampaigns++
		}
		summary.TotalMembers += row.MemberCount
		summary.TotalMarkdown += row.Markdown
		rows = append(rows, row)
	}
	summary.TotalMarkdown = utils.RoundMoney(summary.TotalMarkdown)

	return rows, summary, nil
}

func describeDiscount(campaign *models.Campaign) string {
	switch {
	case campaign.DiscountPercent != nil:
		return fmt.Sprintf("%.1f%%", *campaign.DiscountPercent)
	case campaign.DiscountAmount != nil:
		return fmt.Sprintf("-%.2f", *campaign.DiscountAmount)
	default:
		return "none"
	}
}

func describeWindow(campaign *models.Campaign) string {
	start := "open"
	end := "open"
	if campaign.StartDate != nil {
		start = campaign.StartDate.Format("2006-01-02")
	}
	if campaign.EndDate != nil {
		end = campaign.EndDate.Format("2006-01-02")
	}
	return start + " to " + end
}

// Admin: Download campaign report as Excel
func DownloadCampaignReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadCampaignReportExcel called")

	rows, summary, err := buildCampaignReport()
	if err != nil {
		utils.LogError("Failed to fetch campaigns: %v", err)
		utils.InternalServerError(c, "Failed to fetch campaigns", err.Error())
		return
	}
	utils.LogDebug("Building Excel report for %d campaigns", len(rows))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Campaign Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("SHOPSPHERE - Campaign Report")
	titleRow = sheet.AddRow()
	titleRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headers := []string{"ID", "Title", "Discount", "Window", "Active", "Homepage", "Members", "Markdown"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, row := range rows {
		r := sheet.AddRow()
		r.AddCell().SetInt(int(row.Campaign.ID))
		r.AddCell().SetString(row.Campaign.Title)
		r.AddCell().SetString(describeDiscount(&row.Campaign))
		r.AddCell().SetString(describeWindow(&row.Campaign))
		r.AddCell().SetBool(row.Campaign.IsActive)
		r.AddCell().SetBool(row.Campaign.ShowOnHomepage)
		r.AddCell().SetInt(row.MemberCount)
		r.AddCell().SetFloat(row.Markdown)
	}

	sheet.AddRow() // spacing
	summaryHeader := sheet.AddRow()
	summaryHeader.AddCell().SetString("Summary")
	summaryData := [][]string{
		{"Total Campaigns", fmt.Sprintf("%d", summary.TotalCampaigns)},
		{"Active Campaigns", fmt.Sprintf("%d", summary.ActiveCampaigns)},
		{"Total Memberships", fmt.Sprintf("%d", summary.TotalMembers)},
		{"Total Markdown", fmt.Sprintf("%.2f", summary.TotalMarkdown)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=campaign_report.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated campaign Excel report")
}

// Admin: Download campaign report as PDF
func DownloadCampaignReportPDF(c *gin.Context) {
	utils.LogInfo("DownloadCampaignReportPDF called")

	rows, summary, err := buildCampaignReport()
	if err != nil {
		utils.LogError("Failed to fetch campaigns: %v", err)
		utils.InternalServerError(c, "Failed to fetch campaigns", err.Error())
		return
	}
	utils.LogDebug("Building PDF report for %d campaigns", len(rows))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, "SHOPSPHERE - Campaign Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	headers := []string{"ID", "Title", "Discount", "Window", "Active", "Homepage", "Members", "Markdown"}
	colWidths := []float64{15, 70, 25, 50, 20, 25, 25, 30}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, row := range rows {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, fmt.Sprintf("%d", row.Campaign.ID), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, row.Campaign.Title, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, describeDiscount(&row.Campaign), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, describeWindow(&row.Campaign), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, fmt.Sprintf("%t", row.Campaign.IsActive), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, fmt.Sprintf("%t", row.Campaign.ShowOnHomepage), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[6], 8, fmt.Sprintf("%d", row.MemberCount), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[7], 8, fmt.Sprintf("%.2f", row.Markdown), "1", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(70, 10, "Summary", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	summaryData := [][]string{
		{"Total Campaigns", fmt.Sprintf("%d", summary.TotalCampaigns)},
		{"Active Campaigns", fmt.Sprintf("%d", summary.ActiveCampaigns)},
		{"Total Memberships", fmt.Sprintf("%d", summary.TotalMembers)},
		{"Total Markdown", fmt.Sprintf("%.2f", summary.TotalMarkdown)},
	}
	for _, data := range summaryData {
		pdf.CellFormat(50, 8, data[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, data[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=campaign_report.pdf")
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated campaign PDF report")
}
