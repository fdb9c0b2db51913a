package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/openbookmanager/openbookmanager/config"
	_ "github.com/openbookmanager/openbookmanager/docs"
	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/model"
	"github.com/openbookmanager/openbookmanager/pkg/auth"
	md "github.com/openbookmanager/openbookmanager/pkg/middleware"
	"github.com/openbookmanager/openbookmanager/pkg/validate"
)

type Handler struct {
	catalogSvc CatalogService
	importSvc  ImportService
	exportSvc  ExportService
	admin      config.Admin
	log        *zap.Logger
}

func New(catalogSvc CatalogService, importSvc ImportService, exportSvc ExportService, admin config.Admin, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		importSvc:  importSvc,
		exportSvc:  exportSvc,
		admin:      admin,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/auth/login", h.Login)

	secured := api.Group("", md.JwtAuthentication)

	secured.GET("/books", h.GetBooks)
	secured.POST("/books", h.CreateBook)
	secured.GET("/books/:id", h.GetBook)
	secured.PUT("/books/:id", h.UpdateBook)
	secured.DELETE("/books/:id", h.DeleteBook)

	secured.GET("/authors", h.GetAuthors)
	secured.POST("/authors", h.CreateAuthor)
	secured.PUT("/authors/:id", h.UpdateAuthor)
	secured.DELETE("/authors/:id", h.DeleteAuthor)

	secured.GET("/categories", h.GetCategories)
	secured.GET("/categories/main", h.GetMainCategories)
	secured.POST("/categories/main", h.CreateMainCategory)
	secured.PUT("/categories/main/:code", h.UpdateMainCategory)
	secured.DELETE("/categories/main/:code", h.DeleteMainCategory)
	secured.POST("/categories", h.CreateCategory)
	secured.PUT("/categories/:main/:code", h.UpdateCategory)
	secured.DELETE("/categories/:main/:code", h.DeleteCategory)

	secured.GET("/wishlist", h.GetWishlist)
	secured.POST("/wishlist", h.CreateWishlist)
	secured.PUT("/wishlist/:id", h.UpdateWishlist)
	secured.DELETE("/wishlist/:id", h.DeleteWishlist)

	secured.POST("/scan", h.Scan)

	secured.GET("/import/queue", h.GetImportQueue)
	secured.GET("/import/queue/export.json", h.ExportQueueJSON)
	secured.POST("/import/queue", h.AddManual)
	secured.GET("/import/queue/:id", h.GetScanned)
	secured.PUT("/import/queue/:id", h.UpdateScanned)
	secured.POST("/import/queue/:id/skip", h.Skip)
	secured.POST("/import/queue/:id/unskip", h.Unskip)
	secured.DELETE("/import/queue/:id", h.DeleteScanned)
	secured.POST("/import/queue/:id/process", h.Promote)
	secured.POST("/import/parse-authors", h.ParseAuthors)
	secured.POST("/import/preview-tag", h.PreviewTag)

	secured.GET("/export/books.csv", h.ExportBooksCSV)
	secured.GET("/export/authors.csv", h.ExportAuthorsCSV)
	secured.GET("/export/categories.csv", h.ExportCategoriesCSV)
	secured.GET("/export/wishlist.csv", h.ExportWishlistCSV)
	secured.GET("/export/backup.json", h.ExportBackupJSON)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Login(c echo.Context) error {
	var req model.AuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Username != h.admin.Username || req.Password != h.admin.Password {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := new(auth.Claims)
	claims.Profile.Username = req.Username
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expirationTime),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(auth.JWTKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, model.AuthResponse{
		AccessToken: tokenString,
		ExpiresIn:   int(expirationTime.Unix()),
	})
}

// httpError maps domain errors onto HTTP statuses.
func httpError(err error) *echo.HTTPError {
	var ve *errs.ValidationError
	var de *errs.DuplicateBookError
	switch {
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	case errors.As(err, &de):
		return echo.NewHTTPError(http.StatusConflict, map[string]interface{}{
			"error":  "already_in_collection",
			"bookId": de.BookID,
			"title":  de.Title,
		})
	case errors.Is(err, errs.ErrInvalidISBN):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrMetadataUnavailable):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrAlreadyScanned),
		errors.Is(err, errs.ErrAuthorExists),
		errors.Is(err, errs.ErrAuthorInUse),
		errors.Is(err, errs.ErrCategoryHasBooks),
		errors.Is(err, errs.ErrMainCategoryHasSubcats):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
