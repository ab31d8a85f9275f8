// Package server exposes the timesheet generator as the JSON API a
// browser front-end calls: reference data, per-session leave editing,
// generation, and file downloads. All state is in memory; closing the
// process discards every session.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ailab/timesheetgen/internal/calendar"
	"github.com/ailab/timesheetgen/internal/config"
	"github.com/ailab/timesheetgen/internal/export"
	"github.com/ailab/timesheetgen/internal/generator"
	"github.com/ailab/timesheetgen/internal/model"
	"github.com/ailab/timesheetgen/internal/refdata"
)

// defaultRangeDays is the "last 15 days ending today" convenience range.
const defaultRangeDays = 15

// Server wires reference data, the calendar, and the generator behind
// HTTP handlers.
type Server struct {
	employees []model.Employee
	projects  []model.Project
	holidays  []model.Holiday
	cal       *calendar.Calendar
	sessions  *sessionStore
	origins   []string
}

// New builds a Server for the given reference data. An empty holiday
// table selects the built-in calendar.
func New(cfg config.ServerConfig, employees []model.Employee, projects []model.Project, holidays []model.Holiday) *Server {
	if len(holidays) == 0 {
		holidays = refdata.Holidays()
	}
	return &Server{
		employees: employees,
		projects:  projects,
		holidays:  holidays,
		cal:       calendar.New(holidays),
		sessions:  newSessionStore(),
		origins:   cfg.AllowedOrigins,
	}
}

// Router assembles the gin engine with CORS and all API routes.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = s.origins
	corsCfg.AllowCredentials = true
	router.Use(cors.New(corsCfg))

	api := router.Group("/api")
	{
		api.GET("/employees", s.listEmployees)
		api.GET("/projects", s.listProjects)
		api.GET("/holidays", s.listHolidays)
		api.GET("/calendar", s.getCalendar)
		api.GET("/leave", s.getLeave)
		api.POST("/leave/toggle", s.toggleLeave)
		api.POST("/leave/clear", s.clearLeave)
		api.POST("/generate", s.generate)
		api.GET("/export/csv", s.exportCSV)
		api.GET("/export/xlsx", s.exportXLSX)
		api.GET("/export/xlsx/:employee", s.exportEmployeeXLSX)
	}
	return router
}

// sessionID resolves (or creates) the caller's session and refreshes
// the cookie.
func (s *Server) sessionID(c *gin.Context) string {
	cookie, _ := c.Cookie(SessionCookie)
	id, _ := s.sessions.get(cookie)
	if id != cookie {
		c.SetCookie(SessionCookie, id, 0, "/", "", false, true)
	}
	return id
}

func (s *Server) listEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, s.employees)
}

func (s *Server) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, s.projects)
}

func (s *Server) listHolidays(c *gin.Context) {
	c.JSON(http.StatusOK, s.holidays)
}

// getCalendar classifies every day of a range for one employee.
func (s *Server) getCalendar(c *gin.Context) {
	id := s.sessionID(c)
	employeeID := c.Query("employee")
	if _, ok := refdata.EmployeeByID(s.employees, employeeID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown employee"})
		return
	}

	dates, err := s.resolveRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leave := s.sessions.snapshotLeave(id)
	statuses := make([]model.DayStatus, 0, len(dates))
	for _, d := range dates {
		statuses = append(statuses, s.cal.Classify(d, employeeID, leave))
	}
	c.JSON(http.StatusOK, statuses)
}

func (s *Server) getLeave(c *gin.Context) {
	id := s.sessionID(c)
	c.JSON(http.StatusOK, s.sessions.snapshotLeave(id))
}

type toggleLeaveInput struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
}

func (s *Server) toggleLeave(c *gin.Context) {
	id := s.sessionID(c)

	var input toggleLeaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := refdata.EmployeeByID(s.employees, input.EmployeeID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown employee"})
		return
	}
	if _, err := time.Parse(calendar.DateLayout, input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	var onLeave bool
	s.sessions.update(id, func(sess *session) {
		onLeave = sess.leave.Toggle(input.EmployeeID, input.Date)
	})
	c.JSON(http.StatusOK, gin.H{"on_leave": onLeave, "leave": s.sessions.snapshotLeave(id)})
}

type clearLeaveInput struct {
	EmployeeID string `json:"employee_id"` // empty clears everyone
}

func (s *Server) clearLeave(c *gin.Context) {
	id := s.sessionID(c)

	var input clearLeaveInput
	// An empty body is a global clear.
	_ = c.ShouldBindJSON(&input)

	s.sessions.update(id, func(sess *session) {
		sess.leave.Clear(input.EmployeeID)
	})
	c.JSON(http.StatusOK, s.sessions.snapshotLeave(id))
}

type generateInput struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// generate runs the generator over the requested range (default: last
// 15 days ending today) and remembers the range for later exports.
func (s *Server) generate(c *gin.Context) {
	id := s.sessionID(c)

	var input generateInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	dates, err := s.resolveRange(input.From, input.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.sessions.update(id, func(sess *session) {
		sess.from = dates[0]
		sess.to = dates[len(dates)-1]
	})

	entries := s.generateEntries(id, dates)
	if entries == nil {
		entries = []model.Entry{} // empty result is valid, serialise as []
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) exportCSV(c *gin.Context) {
	entries, ok := s.sessionEntries(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.CSVFilename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(export.CSV(entries)))
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) exportXLSX(c *gin.Context) {
	entries, ok := s.sessionEntries(c)
	if !ok {
		return
	}
	data, err := export.Workbook(entries, s.employees, s.projects)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.XLSXFilename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (s *Server) exportEmployeeXLSX(c *gin.Context) {
	emp, ok := refdata.EmployeeByID(s.employees, c.Param("employee"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown employee"})
		return
	}
	entries, found := s.sessionEntries(c)
	if !found {
		return
	}
	data, err := export.EmployeeWorkbook(entries, emp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.EmployeeXLSXFilename(emp.Name)+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// sessionEntries regenerates entries over the session's stored range.
// Exports always reflect the most recent generate call's range and the
// current leave map; entries themselves are never cached.
func (s *Server) sessionEntries(c *gin.Context) ([]model.Entry, bool) {
	id := s.sessionID(c)

	from, to := s.sessions.rangeFor(id)
	dates, err := s.resolveRange(from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return s.generateEntries(id, dates), true
}

// generateEntries builds a fresh generator per call; the shared rand
// state inside a Generator is not safe for concurrent handlers.
func (s *Server) generateEntries(id string, dates []string) []model.Entry {
	leave := s.sessions.snapshotLeave(id)
	gen := generator.New(s.employees, s.projects, s.cal, nil)
	return gen.Generate(leave, dates)
}

// resolveRange expands from/to, defaulting to the last 15 days ending
// today when both are empty.
func (s *Server) resolveRange(from, to string) ([]string, error) {
	if from == "" && to == "" {
		return calendar.LastNDays(defaultRangeDays, time.Now()), nil
	}
	if to == "" {
		to = from
	}
	if from == "" {
		from = to
	}
	return calendar.ExpandRange(from, to)
}
