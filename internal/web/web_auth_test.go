package web_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpPageRenders(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/signup")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 1, doc.Find("form#signupForm").Length())
	assert.Equal(t, 1, doc.Find("input#full_name").Length())
	assert.Equal(t, 1, doc.Find("input#confirm_password").Length())
}

func TestSignUpSuccess(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/signup", signupForm())
	require.Equal(t, http.StatusOK, rr.Code)

	// Success message plus a deferred redirect to the sign-in page
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#signup-message", "Registration successful! Redirecting to login…")
	assert.Equal(t, "1; url=/signin", rr.Header().Get("Refresh"))

	// Record is in the store
	accounts := ts.app.AccountService.Accounts(context.Background())
	require.Len(t, accounts, 1)
	assert.Equal(t, "asha@gmail.com", accounts[0].Email)
}

func TestSignUpNameWithDigits(t *testing.T) {
	ts := newWebTestServer(t)

	form := signupForm()
	form.Set("full_name", "Asha Rao 2")

	rr := ts.post("/signup", form)
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#name-error", "Numbers are not allowed!")
	assertContainsText(t, doc, "#signup-message", "Please remove numbers from your name.")
	assert.Empty(t, rr.Header().Get("Refresh"))
	assert.Empty(t, ts.app.AccountService.Accounts(context.Background()))
}

func TestSignUpInvalidEmail(t *testing.T) {
	ts := newWebTestServer(t)

	form := signupForm()
	form.Set("email", "asha@example.com")

	rr := ts.post("/signup", form)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#email-error", "Invalid email address (e.g., abc@gmail.com).")
	assertContainsText(t, doc, "#signup-message", "Please provide a valid email address.")
}

func TestSignUpMismatchedPasswords(t *testing.T) {
	ts := newWebTestServer(t)

	form := signupForm()
	form.Set("confirm_password", "different1")

	rr := ts.post("/signup", form)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#signup-message", "Password and Confirm Password must match.")
}

func TestSignUpRepopulatesFields(t *testing.T) {
	ts := newWebTestServer(t)

	form := signupForm()
	form.Set("email", "asha@example.com")

	rr := ts.post("/signup", form)

	doc := parseHTML(rr.Body)
	val, _ := doc.Find("input#full_name").Attr("value")
	assert.Equal(t, "Asha Rao", val)
	val, _ = doc.Find("input#username").Attr("value")
	assert.Equal(t, "asha", val)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/signup", signupForm())
	require.Equal(t, http.StatusOK, rr.Code)

	dup := signupForm()
	dup.Set("username", "other")
	dup.Set("email", "ASHA@Gmail.Com")

	rr = ts.post("/signup", dup)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#signup-message", "An account with this email already exists.")
	assert.Len(t, ts.app.AccountService.Accounts(context.Background()), 1)
}

func TestSignUpDuplicateUsername(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/signup", signupForm())
	require.Equal(t, http.StatusOK, rr.Code)

	dup := signupForm()
	dup.Set("email", "other@gmail.com")

	rr = ts.post("/signup", dup)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#signup-message", "Username already taken. Please choose another.")
}

func TestSignInPageRenders(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/signin")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 1, doc.Find("form#signinForm").Length())
}

func TestSignInSuccess(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/signup", signupForm())
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.post("/signin", url.Values{
		"email":    {"asha@gmail.com"},
		"password": {"secret123"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#error-message", "Login successful! Redirecting…")
	assert.Equal(t, "1; url=/", rr.Header().Get("Refresh"))

	// Home page now shows the session marker
	rr = ts.get("/")
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, "#current-user", "Asha Rao")
	assertContainsText(t, doc, "#current-user", "asha@gmail.com")
}

func TestSignInFailureIsGeneric(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/signup", signupForm())
	require.Equal(t, http.StatusOK, rr.Code)

	wrongPass := ts.post("/signin", url.Values{
		"email":    {"asha@gmail.com"},
		"password": {"wrongpass"},
	})
	unknown := ts.post("/signin", url.Values{
		"email":    {"nobody@gmail.com"},
		"password": {"secret123"},
	})

	wrongDoc := parseHTML(wrongPass.Body)
	unknownDoc := parseHTML(unknown.Body)
	assertContainsText(t, wrongDoc, "#error-message", "Invalid email or password.")
	assertContainsText(t, unknownDoc, "#error-message", "Invalid email or password.")
	assert.Empty(t, wrongPass.Header().Get("Refresh"))

	// No session marker was written
	rr = ts.get("/")
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#current-user", "Nobody is signed in")
}

func TestHomeWithoutSession(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#current-user", "Nobody is signed in")
}
