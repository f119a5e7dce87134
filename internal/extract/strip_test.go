package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripBoilerplate(t *testing.T) {
	markup := `<!doctype html>
<html>
<head><title>Title in head</title><style>body{color:red}</style></head>
<body>
  <header><h1>Site header</h1></header>
  <nav>Home | About</nav>
  <div role="navigation">Menu</div>
  <ol aria-label="Breadcrumb"><li>Top</li></ol>
  <div class="ad-slot">Buy now</div>
  <div id="sns-buttons">Tweet</div>
  <div class="share-box">Share this</div>
  <main>
    <h2>第1巻</h2>
    <p>主人公が   旅に出る。</p>
    <script>alert("x")</script>
    <img src="cover.jpg" alt="cover">
    <p>Second
       paragraph.</p>
  </main>
  <div class="site-footer">Copyright</div>
</body>
</html>`

	got := StripBoilerplate(markup)

	assert.Equal(t, "第1巻 主人公が 旅に出る。 Second paragraph.", got)
}

func TestStripBoilerplate_KeepsUnmarkedText(t *testing.T) {
	assert.Equal(t, "plain text", StripBoilerplate("  plain\n\ttext  "))
}

func TestStripBoilerplate_Empty(t *testing.T) {
	assert.Equal(t, "", StripBoilerplate(""))
	assert.Equal(t, "", StripBoilerplate("<html><body><script>x()</script></body></html>"))
}
