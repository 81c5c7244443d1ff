package api_test

import (
	"net/http"
	"testing"

	"tagcomposer/composer"
	"tagcomposer/tag"
)

func TestAddTag201(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/tags",
		`{"label":"Task","openTag":"<TASK>","closeTag":"</TASK>"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var d tag.Definition
	decode(t, resp, &d)
	if d.ID != "task-2" {
		t.Fatalf("expected colliding id to get -2 suffix, got %q", d.ID)
	}

	var list tag.Registry
	resp, err := http.Get(srv.URL + "/api/tags")
	if err != nil {
		t.Fatal(err)
	}
	decode(t, resp, &list)
	if list[len(list)-1].ID != "task-2" || list[0].ID != "task" {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestAddTagValidation(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/tags", `{"label":"  "}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var body struct {
		Status string `json:"status"`
	}
	decode(t, resp, &body)
	if body.Status != composer.MsgInvalidTag {
		t.Fatalf("unexpected status %q", body.Status)
	}
}

func TestUpdateTag(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/tags/example",
		`{"label":"Sample","openTag":"<SAMPLE>","closeTag":"</SAMPLE>","hint":"x"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var d tag.Definition
	decode(t, resp, &d)
	if d.ID != "example" || d.Label != "Sample" {
		t.Fatalf("unexpected definition %+v", d)
	}

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/tags/ghost",
		`{"label":"A","openTag":"<A>","closeTag":"</A>"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDeleteAndResetTags(t *testing.T) {
	srv, c := newTestServerWithComposer(t)

	for _, id := range []string{"task", "nonexistent"} {
		resp := doJSON(t, http.MethodDelete, srv.URL+"/api/tags/"+id, "")
		resp.Body.Close()
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("DELETE %s: expected 204, got %d", id, resp.StatusCode)
		}
	}
	if _, ok := c.Tags().Find("task"); ok {
		t.Fatal("task still present")
	}

	var list tag.Registry
	decode(t, doJSON(t, http.MethodPost, srv.URL+"/api/tags/reset", ""), &list)
	if len(list) != len(tag.Defaults()) || list[0].ID != "task" {
		t.Fatalf("reset did not restore defaults: %+v", list)
	}
}

func TestDeriveMarkersEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var m tag.Markers
	decode(t, doJSON(t, http.MethodPost, srv.URL+"/api/tags/markers", `{"label":"My Task!"}`), &m)
	if m.OpenTag != "<MY_TASK>" || m.CloseTag != "</MY_TASK>" {
		t.Fatalf("unexpected markers %+v", m)
	}
}

func TestForms(t *testing.T) {
	srv := newTestServer(t)

	var d tag.Draft
	decode(t, doJSON(t, http.MethodPut, srv.URL+"/api/forms/new", `{"label":"Audience","hint":"Who reads it"}`), &d)
	if d.OpenTag != "<AUDIENCE>" {
		t.Fatalf("unexpected draft %+v", d)
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/forms/new/submit", "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var added tag.Definition
	decode(t, resp, &added)
	if added.ID != "audience" || added.Hint != "Who reads it" {
		t.Fatalf("unexpected definition %+v", added)
	}

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/forms/edit", `{"label":"x"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 without an edit in progress, got %d", resp.StatusCode)
	}

	decode(t, doJSON(t, http.MethodPost, srv.URL+"/api/forms/edit/audience", ""), &d)
	if d.Label != "Audience" {
		t.Fatalf("unexpected edit draft %+v", d)
	}
	decode(t, doJSON(t, http.MethodPut, srv.URL+"/api/forms/edit", `{"label":"Readers","hint":"h"}`), &d)
	var saved tag.Definition
	decode(t, doJSON(t, http.MethodPost, srv.URL+"/api/forms/edit/submit", ""), &saved)
	if saved.ID != "audience" || saved.OpenTag != "<READERS>" {
		t.Fatalf("unexpected saved definition %+v", saved)
	}
}
