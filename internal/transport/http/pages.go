package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var landingPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>Holiday Planner</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: linear-gradient(135deg,#0ea5e9,#14b8a6); color: #fff; min-height: 100vh; display: flex; flex-direction: column; }
header { padding: 48px 20px 16px; text-align: center; }
main { flex: 1; max-width: 760px; width: 100%; margin: 0 auto; padding: 0 20px; box-sizing: border-box; }
form { display: flex; gap: 8px; flex-wrap: wrap; justify-content: center; }
input, select, button { padding: 10px 14px; font-size: 15px; border-radius: 4px; border: none; }
button { cursor: pointer; background: rgba(255,255,255,0.25); color: #fff; }
button:hover { background: rgba(255,255,255,0.4); }
ul { list-style: none; padding: 0; }
li { background: rgba(255,255,255,0.12); margin: 8px 0; padding: 12px 16px; border-radius: 6px; }
li small { display: block; opacity: 0.85; }
footer { text-align: center; padding: 20px; font-size: 14px; opacity: 0.8; }
</style>
</head>
<body>
<header>
  <h1>Plan your next holiday</h1>
  <p>Find things to do, save them to your itinerary and book in one tap.</p>
</header>
<main>
  <form onsubmit="return search(event)">
    <input name="location" id="location" placeholder="Where to?" required />
    <select name="category">
      <option value="tourist_attractions">Tourist attractions</option>
      <option value="restaurants">Restaurants</option>
      <option value="hidden_gems">Hidden gems</option>
      <option value="shopping">Shopping</option>
      <option value="movies">Movies</option>
      <option value="hotels">Hotels</option>
      <option value="travel">Travel</option>
    </select>
    <button type="submit">Search</button>
  </form>
  <ul id="results"></ul>
</main>
<footer>API docs at <a href="/swagger/index.html" style="color:#fff">/swagger</a></footer>
<script>
async function session() {
  let token = localStorage.getItem('planner_token');
  if (token) return token;
  const res = await fetch('/api/v1/sessions', { method: 'POST' });
  const data = await res.json();
  localStorage.setItem('planner_token', data.token);
  return data.token;
}
async function search(event) {
  event.preventDefault();
  const params = new URLSearchParams(new FormData(event.target));
  const token = await session();
  const res = await fetch('/api/v1/planner/suggestions?' + params, { headers: { Authorization: 'Bearer ' + token } });
  if (res.status === 401) { localStorage.removeItem('planner_token'); return search(event); }
  const data = await res.json();
  const list = document.getElementById('results');
  list.innerHTML = '';
  if (!res.ok) { list.textContent = data.error || 'Search failed'; return false; }
  for (const s of data.suggestions) {
    const li = document.createElement('li');
    li.textContent = s.name;
    const small = document.createElement('small');
    small.textContent = s.address + (s.distance_km != null ? ' · ' + s.distance_km.toFixed(1) + ' km' : '');
    li.appendChild(small);
    list.appendChild(li);
  }
  return false;
}
fetch('/api/v1/planner/location').then(r => r.json()).then(d => {
  if (d.location && d.location.city) document.getElementById('location').value = d.location.city;
});
</script>
</body>
</html>`

func RegisterPages(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, landingPageHTML)
	})
}
