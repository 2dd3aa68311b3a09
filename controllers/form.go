package controllers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// FormAction is the write operation a CRUD form asks for. Browser forms
// can only POST, so the edit and delete forms carry a hidden _method
// field; the override is resolved here once instead of being
// string-matched inside every handler branch.
type FormAction int

const (
	ActionCreate FormAction = iota
	ActionUpdate
	ActionDelete
)

func formAction(c *gin.Context) FormAction {
	switch c.PostForm("_method") {
	case "PUT":
		return ActionUpdate
	case "DELETE":
		return ActionDelete
	default:
		return ActionCreate
	}
}

const dateLayout = "2006-01-02"

// formDate returns the submitted calendar date, or today when the field
// is blank. Anything that is not YYYY-MM-DD is rejected.
func formDate(c *gin.Context, field string) (string, error) {
	v := strings.TrimSpace(c.PostForm(field))
	if v == "" {
		return time.Now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		return "", fmt.Errorf("invalid %s %q: expected YYYY-MM-DD", field, v)
	}
	return v, nil
}

// formOptionalDate is like formDate but a blank field stays NULL.
func formOptionalDate(c *gin.Context, field string) (*string, error) {
	v := strings.TrimSpace(c.PostForm(field))
	if v == "" {
		return nil, nil
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		return nil, fmt.Errorf("invalid %s %q: expected YYYY-MM-DD", field, v)
	}
	return &v, nil
}

// formAmount parses an integer rupee amount, defaulting to 0 when blank.
func formAmount(c *gin.Context, field string) (int, error) {
	v := strings.TrimSpace(c.PostForm(field))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected an integer", field, v)
	}
	return n, nil
}
