package main

import (
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
)

type server struct {
	// serializes scan-then-create and the shared random source
	mu  sync.Mutex
	gen *Generator
}

type generateResponse struct {
	File string `json:"file"`
	Size int    `json:"size"`
}

func Init(e *echo.Echo, gen *Generator) {
	e.Use(middleware.Recover())
	setController(e, &server{gen: gen})
}

func setController(e *echo.Echo, s *server) {
	e.POST("/generate", s.Generate)
	e.POST("/verify", s.Verify)
}

// Generate writes a new matrix file sized by the "size" form value.
func (s *server) Generate(c echo.Context) error {
	size := fixedDimension(c.FormValue("size"))

	path, err := s.generate(size)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return echo.NewHTTPError(http.StatusBadRequest, perr.Error())
		}
		logger.Errorf("fail to generate matrix: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "generation error: "+err.Error())
	}

	// size already parsed successfully by Generate
	n, _ := size.ReadDimension()
	logger.Infof("The file %s was created", path)
	return c.JSON(http.StatusCreated, generateResponse{File: path, Size: n})
}

func (s *server) generate(dim DimensionReader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.Generate(dim)
}

// Verify parses an uploaded matrix file and returns its summary.
func (s *server) Verify(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "form parse error: "+err.Error())
	}
	defer form.RemoveAll() // clear tmp file

	fileHeader, err := fetchFileHeader(form)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// open file stream (not load into memory)
	srcFile, err := fileHeader.Open()
	if err != nil {
		logger.Errorf("failed to open source file: %v", err)
		return echo.NewHTTPError(http.StatusBadRequest, "fail to open file: "+err.Error())
	}
	defer srcFile.Close()

	m, err := ReadMatrix(srcFile)
	if err != nil {
		logger.Errorf("invalid matrix file %s: %v", fileHeader.Filename, err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = m.checkRange(minValue, maxValue); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, m.Summary())
}

func validateFileType(fileHeader *multipart.FileHeader) error {
	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != matrixExt {
		logger.Errorf("File type %s is not supported", ext)
		return fmt.Errorf("only %s file supported", strings.TrimPrefix(matrixExt, "."))
	}
	return nil
}

// Fetch fileHeader from multipart form to support stream read
func fetchFileHeader(form *multipart.Form) (*multipart.FileHeader, error) {
	files := form.File["file"]
	if len(files) == 0 {
		logger.Error("File not found in the form")
		return nil, errors.New("no files found in the form")
	}
	fileHeader := files[0]
	if fileHeader.Size == 0 {
		logger.Error("File is empty")
		return nil, errors.New("empty file")
	}
	if err := validateFileType(fileHeader); err != nil {
		return nil, err
	}
	return fileHeader, nil
}
