package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormSubmissionBodyEscapesFields(t *testing.T) {
	body := formSubmissionBody(map[string]string{
		"name":               "Ada",
		"<script>k</script>": `<img src=x onerror="alert(1)">`,
	})

	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "<img")
	assert.Contains(t, body, "&lt;script&gt;k&lt;/script&gt;")
	assert.Contains(t, body, "&lt;img src=x onerror=&#34;alert(1)&#34;&gt;")
	assert.Contains(t, body, "<td><strong>name</strong></td><td>Ada</td>")
}

func TestFormSubmissionBodyOrdersFields(t *testing.T) {
	body := formSubmissionBody(map[string]string{"b": "2", "a": "1", "c": "3"})

	ai := strings.Index(body, ">a<")
	bi := strings.Index(body, ">b<")
	ci := strings.Index(body, ">c<")
	assert.True(t, ai < bi && bi < ci)
}
