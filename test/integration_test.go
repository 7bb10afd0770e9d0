package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"image-cms/handlers"
	"image-cms/models"
	"image-cms/repositories"
	"image-cms/rpc"
	"image-cms/rpc/imagepb"
	"image-cms/services"
)

type IntegrationTestSuite struct {
	suite.Suite
	db         *gorm.DB
	router     *gin.Engine
	grpcServer *grpc.Server
	grpcConn   *grpc.ClientConn
	client     imagepb.ImageServiceClient
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (suite *IntegrationTestSuite) SetupSuite() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "image_cms_test"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		suite.T().Skipf("test database not reachable: %v", err)
	}
	suite.Require().NoError(db.AutoMigrate(&models.Image{}, &models.ImageTag{}))
	suite.db = db

	// One shared service behind both adapters, as in main
	imageRepo := repositories.NewImageRepository(db, 10000)
	imageService := services.NewImageService(imageRepo)
	imageHandler := handlers.NewImageHandler(imageService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		images := v1.Group("/images")
		{
			images.POST("/", imageHandler.CreateImage)
			images.GET("/", imageHandler.GetImages)
			images.GET("/:id", imageHandler.GetImage)
			images.PUT("/:id", imageHandler.UpdateImage)
			images.DELETE("/:id", imageHandler.DeleteImage)
		}
		v1.GET("/export/", imageHandler.ExportImages)
	}
	suite.router = router

	// gRPC adapter over an in-memory listener
	lis := bufconn.Listen(1024 * 1024)
	suite.grpcServer = rpc.NewServer(imageService)
	go suite.grpcServer.Serve(lis)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	suite.Require().NoError(err)
	suite.grpcConn = conn
	suite.client = imagepb.NewImageServiceClient(conn)
}

func (suite *IntegrationTestSuite) TearDownSuite() {
	if suite.grpcConn != nil {
		suite.grpcConn.Close()
	}
	if suite.grpcServer != nil {
		suite.grpcServer.Stop()
	}
}

func (suite *IntegrationTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM image_tags")
	suite.db.Exec("DELETE FROM images")
}

func (suite *IntegrationTestSuite) performRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) createImage(title, author string, tags []string) models.Image {
	w := suite.performRequest(http.MethodPost, "/api/v1/images/", gin.H{
		"image_url": "http://example.com/" + title + ".jpg",
		"title":     title,
		"author":    author,
		"tags":      tags,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var image models.Image
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &image))
	return image
}

func (suite *IntegrationTestSuite) TestImageLifecycleOverRest() {
	created := suite.createImage("t", "a", []string{"x", "y"})
	suite.NotZero(created.ID)

	// Read it back
	w := suite.performRequest(http.MethodGet, fmt.Sprintf("/api/v1/images/%d", created.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var fetched models.Image
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &fetched))
	tags := []string{}
	for _, t := range fetched.Tags {
		tags = append(tags, t.Tag)
	}
	suite.ElementsMatch([]string{"x", "y"}, tags)

	// Partial update: only the title changes
	w = suite.performRequest(http.MethodPut, fmt.Sprintf("/api/v1/images/%d", created.ID), gin.H{"title": "t2"})
	suite.Require().Equal(http.StatusOK, w.Code)

	var updated models.Image
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal("t2", updated.Title)
	suite.Equal("a", updated.Author)
	suite.Len(updated.Tags, 2)
	suite.Equal(fetched.CreatedAt.UTC(), updated.CreatedAt.UTC())

	// Explicit empty tag list clears the set
	w = suite.performRequest(http.MethodPut, fmt.Sprintf("/api/v1/images/%d", created.ID), gin.H{"tags": []string{}})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Empty(updated.Tags)

	// Delete, then both adapters report absence
	w = suite.performRequest(http.MethodDelete, fmt.Sprintf("/api/v1/images/%d", created.ID), nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.performRequest(http.MethodGet, fmt.Sprintf("/api/v1/images/%d", created.ID), nil)
	suite.Equal(http.StatusNotFound, w.Code)

	_, err := suite.client.GetImage(context.Background(), &imagepb.GetImageRequest{ImageId: int64(created.ID)})
	suite.Equal(codes.NotFound, status.Code(err))

	w = suite.performRequest(http.MethodDelete, fmt.Sprintf("/api/v1/images/%d", created.ID), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestListSummariesAndFilters() {
	suite.createImage("t1", "alice", []string{"sunset", "sunset"})
	suite.createImage("t2", "bob", []string{"beach"})

	w := suite.performRequest(http.MethodGet, "/api/v1/images/?tag=sunset", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var summaries []models.ImageSummary
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &summaries))
	suite.Require().Len(summaries, 1)
	suite.Equal("t1", summaries[0].Title)
	// Summary view: flattened tags, and no image_url at all
	suite.Equal([]string{"sunset", "sunset"}, summaries[0].Tags)
	suite.NotContains(w.Body.String(), "image_url")

	w = suite.performRequest(http.MethodGet, "/api/v1/images/?author=bob", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &summaries))
	suite.Require().Len(summaries, 1)
	suite.Equal("t2", summaries[0].Title)
}

func (suite *IntegrationTestSuite) TestExportReturnsDetails() {
	suite.createImage("t1", "alice", []string{"x"})
	suite.createImage("t2", "bob", []string{"y"})

	w := suite.performRequest(http.MethodGet, "/api/v1/export/?author=alice", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var details []models.Image
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &details))
	suite.Require().Len(details, 1)
	suite.Equal("http://example.com/t1.jpg", details[0].ImageURL)
}

func (suite *IntegrationTestSuite) TestGrpcLifecycleSeesRestWrites() {
	ctx := context.Background()

	created, err := suite.client.CreateImage(ctx, &imagepb.CreateImageRequest{
		ImageUrl: "http://example.com/g.jpg",
		Title:    "grpc",
		Author:   "carol",
		Tags:     []string{"x", "y"},
	})
	suite.Require().NoError(err)
	suite.NotZero(created.Image.Id)
	suite.NotNil(created.Image.CreatedAt)

	// The REST adapter sees the same record
	w := suite.performRequest(http.MethodGet, fmt.Sprintf("/api/v1/images/%d", created.Image.Id), nil)
	suite.Equal(http.StatusOK, w.Code)

	// Presence-gated update: author only
	author := "dave"
	updated, err := suite.client.UpdateImage(ctx, &imagepb.UpdateImageRequest{
		ImageId: created.Image.Id,
		Author:  &author,
	})
	suite.Require().NoError(err)
	suite.Equal("dave", updated.Image.Author)
	suite.Equal("grpc", updated.Image.Title)
	suite.ElementsMatch([]string{"x", "y"}, updated.Image.Tags)
	suite.Equal(created.Image.CreatedAt.Seconds, updated.Image.CreatedAt.Seconds)

	// Present-but-empty tag list clears the set
	updated, err = suite.client.UpdateImage(ctx, &imagepb.UpdateImageRequest{
		ImageId: created.Image.Id,
		Tags:    &imagepb.TagList{Values: []string{}},
	})
	suite.Require().NoError(err)
	suite.Empty(updated.Image.Tags)

	// Filtered list over gRPC
	tag := "x"
	listed, err := suite.client.ListImages(ctx, &imagepb.ListImagesRequest{Skip: 0, Limit: 100, Tag: &tag})
	suite.Require().NoError(err)
	suite.Empty(listed.Images)

	listed, err = suite.client.ListImages(ctx, &imagepb.ListImagesRequest{Skip: 0, Limit: 100})
	suite.Require().NoError(err)
	suite.Len(listed.Images, 1)

	exported, err := suite.client.ExportImages(ctx, &imagepb.ExportImagesRequest{})
	suite.Require().NoError(err)
	suite.Len(exported.Images, 1)

	deleted, err := suite.client.DeleteImage(ctx, &imagepb.DeleteImageRequest{ImageId: created.Image.Id})
	suite.Require().NoError(err)
	suite.True(deleted.Success)

	_, err = suite.client.DeleteImage(ctx, &imagepb.DeleteImageRequest{ImageId: created.Image.Id})
	suite.Equal(codes.NotFound, status.Code(err))
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
