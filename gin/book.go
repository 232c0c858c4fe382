package gin

import (
	"html"
	"net/http"
	"strings"

	"github.com/fwojciec/booklog"
	"github.com/gin-gonic/gin"
)

// bookRequest is the body of POST and PUT /api/books.
type bookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Rating string `json:"rating"`
}

// sanitize strips all markup from v and returns the remaining text
// unescaped.
func (s *Server) sanitize(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

func (s *Server) bindBook(c *gin.Context) (booklog.Book, bool) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body"})
		return booklog.Book{}, false
	}

	book := booklog.Book{
		Title:  s.sanitize(req.Title),
		Author: s.sanitize(req.Author),
		Genre:  s.sanitize(req.Genre),
		Rating: s.sanitize(req.Rating),
	}
	if err := book.Validate(); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": booklog.ErrorMessage(err)})
		return booklog.Book{}, false
	}
	return book, true
}

// abortResult writes the error response for a result that is not OK.
func abortResult(c *gin.Context, res booklog.Result) {
	switch {
	case res.NotFound():
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "book not found"})
	case booklog.ErrorCode(res.Err) == booklog.EINVALID:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": booklog.ErrorMessage(res.Err)})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal error."})
	}
}

func (s *Server) handleGenres(c *gin.Context) {
	c.JSON(http.StatusOK, booklog.Genres)
}

func (s *Server) handleBookIndex(c *gin.Context) {
	q := booklog.BookQuery{
		Search: c.Query("search"),
		Genre:  c.Query("genre"),
		SortBy: booklog.SortKey(c.Query("sort")),
	}

	books, res := s.Catalog.SearchBooks(c.Request.Context(), q)
	if !res.OK() {
		abortResult(c, res)
		return
	}
	if books == nil {
		books = []*booklog.Book{}
	}
	c.JSON(http.StatusOK, books)
}

func (s *Server) handleBookView(c *gin.Context) {
	book, res := s.Catalog.FindBookByID(c.Request.Context(), c.Param("id"))
	if !res.OK() {
		abortResult(c, res)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (s *Server) handleBookCreate(c *gin.Context) {
	book, ok := s.bindBook(c)
	if !ok {
		return
	}

	if res := s.Catalog.AddBook(c.Request.Context(), &book); !res.OK() {
		abortResult(c, res)
		return
	}
	c.JSON(http.StatusCreated, book)
}

func (s *Server) handleBookUpdate(c *gin.Context) {
	book, ok := s.bindBook(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if res := s.Catalog.UpdateBookByID(c.Request.Context(), id, book); !res.OK() {
		abortResult(c, res)
		return
	}

	if updated, res := s.Catalog.FindBookByID(c.Request.Context(), id); res.OK() {
		c.JSON(http.StatusOK, updated)
		return
	}
	book.ID = id
	c.JSON(http.StatusOK, book)
}

func (s *Server) handleBookDelete(c *gin.Context) {
	if res := s.Catalog.DeleteBookByID(c.Request.Context(), c.Param("id")); !res.OK() {
		abortResult(c, res)
		return
	}
	c.Status(http.StatusNoContent)
}
