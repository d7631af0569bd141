package controllers

import (
	"fmt"
	"net/http"

	"eyedea-api/config"
	"eyedea-api/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []string{
	"Idea Number", "Title", "Status", "Pillar", "Department", "Team",
	"Improvement Type", "Submitted By", "Assigned Approver",
	"Quick Win", "Complexity", "Savings Type", "Cost Savings",
	"Time Saved (Hours)", "Time Saved (Minutes)", "Evaluated By",
	"Tech Person", "Best Idea", "Target Completion", "Created At",
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefNum(f *float64) interface{} {
	if f == nil {
		return ""
	}
	return *f
}

// ExportIdeasExcel streams all ideas as a styled xlsx download.
func ExportIdeasExcel(c *gin.Context) {
	var ideas []models.Idea
	if err := config.DB.Where("delete_at IS NULL").
		Order("create_at ASC").
		Find(&ideas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ideas"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Eye-deas"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"0066CC"}, Pattern: 1},
		Font: &excelize.Font{Color: "FFFFFF", Bold: true},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, idea := range ideas {
		quickWin := ""
		if idea.IsQuickWin != nil {
			quickWin = "No"
			if *idea.IsQuickWin {
				quickWin = "Yes"
			}
		}
		bestIdea := "No"
		if idea.IsBestIdea {
			bestIdea = "Yes"
		}
		createdAt := ""
		if idea.CreateAt != nil {
			createdAt = idea.CreateAt.Format("2006-01-02 15:04:05")
		}

		row := []interface{}{
			idea.IdeaNumber,
			idea.Title,
			idea.Status,
			idea.Pillar,
			derefStr(idea.Department),
			derefStr(idea.Team),
			idea.ImprovementType,
			idea.SubmittedByUsername,
			derefStr(idea.AssignedApproverUsername),
			quickWin,
			derefStr(idea.ComplexityLevel),
			derefStr(idea.SavingsType),
			derefNum(idea.CostSavings),
			derefNum(idea.TimeSavedHours),
			derefNum(idea.TimeSavedMinutes),
			derefStr(idea.EvaluatedByUsername),
			derefStr(idea.TechPersonName),
			bestIdea,
			idea.TargetCompletion,
			createdAt,
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
			return
		}
	}

	// Reasonable widths; the idea text columns get more room.
	f.SetColWidth(sheet, "A", "T", 16)
	f.SetColWidth(sheet, "B", "B", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate export"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", "eyedeas.xlsx"))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
