package server

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"flag"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/swayops/resty"

	"github.com/agorahq/agora/config"
	"github.com/agorahq/agora/internal/auth"
)

type M map[string]interface{}

var (
	printResp = flag.Bool("pr", os.Getenv("PR") != "", "print responses")
	genData   = flag.Bool("gen", os.Getenv("gen") != "", "leave the test data")

	cfg *config.Config

	insecureTransport = &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}

	ts   *httptest.Server
	rstP = sync.Pool{
		New: func() interface{} {
			rst := resty.NewClient(ts.URL + "/api/v1/")
			rst.HTTPClient.Transport = insecureTransport
			return rst
		},
	}

	srv *Server
)

func init() {
	log.SetFlags(log.Lshortfile | log.Ltime)
	testing.Init()
	flag.Parse()

	panicIf(os.Chdir("..")) // this is for the relative paths in config, like imagesDir

	resty.LogRequests = *printResp
}

func TestMain(m *testing.M) {
	var (
		code int = 1
		err  error
	)
	defer func() { os.Exit(code) }()

	cfg, err = config.New("./config/config.json")
	panicIf(err)

	cfg.Sandbox = true // always set it to true just in case

	if !*genData {
		cfg.DBPath, err = os.MkdirTemp("", "agora-srv")
		panicIf(err)
		cfg.ImagesDir = cfg.DBPath + "/images/"

		defer os.RemoveAll(cfg.DBPath) // clean up
	}

	// disable all the gin spam
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	srv, err = New(cfg, r)
	panicIf(err)

	ts = httptest.NewTLSServer(r)
	// the test client has to share the cookie domain from the config
	ts.URL = strings.Replace(ts.URL, "127.0.0.1", cfg.Host, 1)
	defer ts.Close()

	code = m.Run()
}

func panicIf(err error) {
	if err != nil {
		log.Panic(err)
	}
}

func getClient() *resty.Client { return rstP.Get().(*resty.Client) }

func putClient(c *resty.Client) {
	c.Reset()
	rstP.Put(c)
}

type signupUser struct {
	*auth.User
	Password  string `json:"pass"`
	Password2 string `json:"pass2"`
	ExpID     string `json:"-"`
}

const defaultPass = "12345678"

var counter int = 1 // 1 is the built in admin

func getSignupCompany() *signupUser {
	counter++
	id := strconv.Itoa(counter)
	name := "Acme " + id

	return &signupUser{
		&auth.User{
			Name:  name,
			Email: name + "@a.b",
			Type:  auth.CompanyRole,
			Company: &auth.Company{
				Name:        name + " Inc",
				Industry:    "consumer goods",
				Description: "We make things.",
			},
		},
		defaultPass,
		defaultPass,
		id,
	}
}

// testPNG returns a square data-URI png the avatar endpoint will accept.
func testPNG(size int) string {
	var buf bytes.Buffer
	panicIf(png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, size, size))))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func getSignupCreator() *signupUser {
	counter++
	id := strconv.Itoa(counter)
	name := "Jane " + id

	return &signupUser{
		&auth.User{
			Name:  name,
			Email: name + "@a.b",
			Type:  auth.CreatorRole,
			Creator: &auth.Creator{
				DisplayName: name,
				Bio:         "I make things about things.",
				Niches:      []string{"tech"},
				Handles:     map[string]string{"youtube": "@" + name},
				Followers:   map[string]int64{"youtube": 12000},
			},
		},
		defaultPass,
		defaultPass,
		id,
	}
}
