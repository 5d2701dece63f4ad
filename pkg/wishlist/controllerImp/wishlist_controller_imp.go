package controllerImp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"gardenplan/entities"
	"gardenplan/pkg/wishlist/repository"
)

type WishlistCtrl struct {
	repo     repository.WishlistRepository
	allow    map[string]bool
	maxBytes int
}

func New(repo repository.WishlistRepository) *WishlistCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(os.Getenv("SHOP_ALLOWED_DOMAINS"), ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	mb := 1500000
	if v := os.Getenv("SHOP_MAX_BYTES_PER_PAGE"); v != "" {
		fmt.Sscanf(v, "%d", &mb)
	}
	return &WishlistCtrl{repo: repo, allow: allow, maxBytes: mb}
}

type itemReq struct {
	Name      *string `json:"name"`
	Variety   *string `json:"variety"`
	SourceURL *string `json:"source_url"`
	Notes     *string `json:"notes"`
	Priority  *int    `json:"priority"`
	Acquired  *bool   `json:"acquired"`
}

func (h *WishlistCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	w := &entities.WishlistItem{UserID: uid, Name: strings.TrimSpace(*req.Name)}
	if req.Variety != nil {
		w.Variety = *req.Variety
	}
	if req.SourceURL != nil {
		w.SourceURL = *req.SourceURL
	}
	if req.Notes != nil {
		w.Notes = *req.Notes
	}
	if req.Priority != nil {
		w.Priority = *req.Priority
	}
	if err := h.repo.Create(w); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *WishlistCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	ws, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ws)
}

func (h *WishlistCtrl) Patch(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("item_id"))
	w, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Variety != nil {
		w.Variety = *req.Variety
	}
	if req.SourceURL != nil {
		w.SourceURL = *req.SourceURL
	}
	if req.Notes != nil {
		w.Notes = *req.Notes
	}
	if req.Priority != nil {
		w.Priority = *req.Priority
	}
	if req.Acquired != nil {
		w.Acquired = *req.Acquired
	}
	if err := h.repo.Update(w); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, w)
}

func (h *WishlistCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("item_id"))
	if err := h.repo.Delete(uint(id), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ImportURL prefills a wishlist item from a seed-shop product page.
// Only allow-listed shop domains are fetched.
func (h *WishlistCtrl) ImportURL(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct{ URL, Notes string }
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
	}
	host := strings.ToLower(u.Host)
	if !h.allow[host] {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	}

	name, desc, err := fetchProductInfo(body.URL, h.maxBytes)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	notes := body.Notes
	if notes == "" {
		notes = desc
	}
	w := &entities.WishlistItem{UserID: uid, Name: name, SourceURL: body.URL, Notes: notes}
	if err := h.repo.Create(w); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, w)
}

func fetchProductInfo(u string, maxBytes int) (name, desc string, err error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(v) != "" {
		name = strings.TrimSpace(v)
	} else if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		name = t
	} else {
		name = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if name == "" {
		return "", "", fmt.Errorf("no product name found")
	}
	if v, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		desc = strings.TrimSpace(v)
	} else if v, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		desc = strings.TrimSpace(v)
	}
	return name, desc, nil
}
