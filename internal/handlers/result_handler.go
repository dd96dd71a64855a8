package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xosoviet/xoso-backend/internal/models"
	"github.com/xosoviet/xoso-backend/internal/services"
	"github.com/xosoviet/xoso-backend/internal/utils"
)

// ResultHandler handles result-related HTTP requests
type ResultHandler struct {
	 resultService services.ResultService
}

// NewResultHandler creates a new ResultHandler
func NewResultHandler(resultService services.ResultService) *ResultHandler {
	return &ResultHandler{
		 resultService: resultService,
	}
}

// GetResults handles GET /results?date=&region=
// The region parameter is passed through unvalidated: unknown regions
// resolve to an empty result set rather than an error.
func (h *ResultHandler) GetResults(c *gin.Context) {
	 date := c.Query("date")
	 if date == "" {
		 date = time.Now().Format("2006-01-02")
	 } else if _, err := time.Parse("2006-01-02", date); err != nil {
		 c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
		 return
	 }
	 region := models.NormalizeRegion(c.DefaultQuery("region", string(models.RegionAll)))

	 results := h.resultService.Resolve(c.Request.Context(), date, region)
	 c.JSON(http.StatusOK, gin.H{
		 "date":    date,
		 "region":  region,
		 "results": results,
	 })
}

// GetHistory handles GET /results/history?region=&from=&to=
func (h *ResultHandler) GetHistory(c *gin.Context) {
	 region, ok := models.ParseRegion(c.Query("region"))
	 if !ok || region == models.RegionAll {
		 c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid region (north, central or south)"})
		 return
	 }
	 from := c.Query("from")
	 to := c.Query("to")
	 for _, d := range []string{from, to} {
		 if d == "" {
			 continue
		 }
		 if _, err := time.Parse("2006-01-02", d); err != nil {
			 c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
			 return
		 }
	 }

	 results, err := h.resultService.History(c.Request.Context(), region, from, to)
	 if err != nil {
		 c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve history: " + err.Error()})
		 return
	 }
	 c.JSON(http.StatusOK, gin.H{"region": region, "results": results})
}

// GetSchedule handles GET /schedule/:day?region=
func (h *ResultHandler) GetSchedule(c *gin.Context) {
	 day, ok := parseWeekday(c.Param("day"))
	 if !ok {
		 c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day of week"})
		 return
	 }
	 regionParam := c.DefaultQuery("region", string(models.RegionAll))
	 region, ok := models.ParseRegion(regionParam)
	 if !ok {
		 c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid region"})
		 return
	 }

	 schedule := make(map[models.Region][]string)
	 if region == models.RegionAll {
		 for _, r := range models.AllRegions() {
			 schedule[r] = utils.GetDrawProvinces(r, day)
		 }
	 } else {
		 schedule[region] = utils.GetDrawProvinces(region, day)
	 }
	 c.JSON(http.StatusOK, gin.H{"day": day.String(), "schedule": schedule})
}

// PublishResult handles POST /admin/results
func (h *ResultHandler) PublishResult(c *gin.Context) {
	var request models.PublishResultRequest
	 if err := c.ShouldBindJSON(&request); err != nil {
		 c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		 return
	 }
	 if _, err := time.Parse("2006-01-02", request.Date); err != nil {
		 c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
		 return
	 }
	 region, ok := models.ParseRegion(request.Region)
	 if !ok || region == models.RegionAll {
		 c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid region (north, central or south)"})
		 return
	 }

	 result := request.Result
	 result.Date = request.Date
	 if result.Name == "" {
		 result.Name = region.DisplayName()
	 }
	 if err := h.resultService.Publish(c.Request.Context(), region, &result); err != nil {
		 c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish result: " + err.Error()})
		 return
	 }
	 c.JSON(http.StatusCreated, gin.H{"message": "Result published", "region": region, "date": request.Date})
}

// GetCacheStats handles GET /admin/cache
func (h *ResultHandler) GetCacheStats(c *gin.Context) {
	 c.JSON(http.StatusOK, h.resultService.CacheStats())
}

// ClearCache handles DELETE /admin/cache
func (h *ResultHandler) ClearCache(c *gin.Context) {
	 h.resultService.ClearCache()
	 c.JSON(http.StatusOK, gin.H{"message": "Cache cleared"})
}

// parseWeekday parses a weekday string (case-insensitive)
func parseWeekday(dayStr string) (time.Weekday, bool) {
	 switch strings.ToLower(dayStr) {
	 case "sunday":
		 return time.Sunday, true
	 case "monday":
		 return time.Monday, true
	 case "tuesday":
		 return time.Tuesday, true
	 case "wednesday":
		 return time.Wednesday, true
	 case "thursday":
		 return time.Thursday, true
	 case "friday":
		 return time.Friday, true
	 case "saturday":
		 return time.Saturday, true
	 default:
		 return 0, false
	 }
}
