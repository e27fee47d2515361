package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"salonpro-web/apiclient"
	"salonpro-web/booking"
	"salonpro-web/config"
	"salonpro-web/controllers"
	"salonpro-web/internal/fakeapi"
	"salonpro-web/models"
	"salonpro-web/services"
	"salonpro-web/templates"
)

const (
	cookieName = "salonpro_test"
	password   = "secreto123"
	slotDate   = "2030-05-10"
)

type harness struct {
	t      *testing.T
	fake   *fakeapi.Server
	router *gin.Engine
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	fake := fakeapi.New()
	srv := fake.Start()
	t.Cleanup(srv.Close)

	logger := zerolog.Nop()
	api, err := apiclient.New(apiclient.Config{BaseURL: srv.URL, Timeout: 5 * time.Second, Logger: logger})
	if err != nil {
		t.Fatalf("api client: %v", err)
	}
	sealer, err := services.NewTokenSealer("0123456789abcdef-routes")
	if err != nil {
		t.Fatalf("sealer: %v", err)
	}
	auth := services.NewAuthService(api)
	catalog := services.NewCatalogService(api)
	slots := services.NewSlotService(api)
	appointments := services.NewAppointmentService(api)
	ctl := controllers.New(controllers.Deps{
		Sessions:     services.NewSessionManager(services.NewMemorySessionStore(sealer), auth, logger, services.SessionConfig{TTL: time.Hour}),
		Auth:         auth,
		Catalog:      catalog,
		Slots:        slots,
		Appointments: appointments,
		Users:        services.NewUserService(api),
		Reviews:      services.NewReviewService(api),
		Reports:      services.NewReportService(api),
		Toasts:       services.NewToasts(),
		Workspaces:   booking.NewRegistry(),
		Booker:       booking.NewBooker(catalog, slots, appointments, logger),
		Planner:      booking.NewPlanner(slots, logger),
		Logger:       logger,
	})
	tmpl, err := templates.Load(time.Now)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	cfg := &config.Config{
		SessionCookie: cookieName,
		SessionTTL:    time.Hour,
		CORSOrigins:   []string{"http://localhost:3000"},
	}
	return &harness{t: t, fake: fake, router: SetupRouter(ctl, cfg, logger, tmpl)}
}

// browser keeps the session cookie between requests like a real client.
type browser struct {
	h      *harness
	cookie *http.Cookie
	json   bool
}

func (h *harness) browser() *browser { return &browser{h: h} }

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.h.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if b.json {
		req.Header.Set("Accept", "application/json")
	} else {
		req.Header.Set("Accept", "text/html")
	}
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	w := httptest.NewRecorder()
	b.h.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			b.cookie = c
		}
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder { return b.do(http.MethodGet, path, nil) }

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return b.do(http.MethodPost, path, form)
}

func (b *browser) login(email string) {
	b.h.t.Helper()
	w := b.post("/login", url.Values{"email": {email}, "password": {password}})
	if w.Code != http.StatusSeeOther {
		b.h.t.Fatalf("login %s: status %d body %s", email, w.Code, w.Body.String())
	}
}

func (h *harness) user(email string, role models.Role) models.User {
	return h.fake.AddUser(models.User{
		Email: email, FirstName: "Ana", LastName: "Pérez", Role: role,
		IsActive: true, EmailVerified: true,
	}, password)
}

func expectRedirect(t *testing.T, w *httptest.ResponseRecorder, to string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303 (body %s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != to {
		t.Fatalf("Location = %q, want %q", got, to)
	}
}

func expectPage(t *testing.T, w *httptest.ResponseRecorder, contains ...string) {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "</html>") {
		t.Fatalf("page did not render completely: %s", body)
	}
	for _, s := range contains {
		if !strings.Contains(body, s) {
			t.Errorf("page is missing %q", s)
		}
	}
}

func TestLoginRedirectsByRole(t *testing.T) {
	h := newHarness(t)
	h.user("cliente@test.com", models.RoleClient)
	h.user("admin@test.com", models.RoleAdmin)
	h.user("prestador@test.com", models.RoleProvider)

	cases := map[string]string{
		"cliente@test.com":   "/",
		"admin@test.com":     "/admin/inicio",
		"prestador@test.com": "/prestador/inicio",
	}
	for email, home := range cases {
		b := h.browser()
		w := b.post("/login", url.Values{"email": {email}, "password": {password}})
		expectRedirect(t, w, home)

		// a logged-in visitor of /login goes straight home
		expectRedirect(t, b.get("/login"), home)
	}
}

func TestLoginFailureKeepsEmail(t *testing.T) {
	h := newHarness(t)
	h.user("cliente@test.com", models.RoleClient)

	w := h.browser().post("/login", url.Values{"email": {"cliente@test.com"}, "password": {"incorrecta"}})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `value="cliente@test.com"`) {
		t.Error("email was not kept in the form")
	}
	if strings.Contains(body, "incorrecta") {
		t.Error("password must not be echoed back")
	}
}

func TestLoginIssuesFreshSessionID(t *testing.T) {
	h := newHarness(t)
	h.user("cliente@test.com", models.RoleClient)

	b := h.browser()
	expectPage(t, b.get("/login"))
	if b.cookie == nil {
		t.Fatal("visitor got no session cookie")
	}
	planted := *b.cookie

	b.login("cliente@test.com")
	if b.cookie.Value == planted.Value {
		t.Fatal("login kept the pre-login session id")
	}
	expectPage(t, b.get("/mis-citas"))

	// whoever still holds the pre-login id stays anonymous
	other := h.browser()
	other.cookie = &planted
	expectRedirect(t, other.get("/mis-citas"), "/login")
}

func TestRegisterIssuesFreshSessionID(t *testing.T) {
	h := newHarness(t)
	b := h.browser()
	expectPage(t, b.get("/registro"))
	planted := *b.cookie

	w := b.post("/registro", url.Values{
		"email": {"nueva@test.com"}, "password": {password}, "confirmPassword": {password},
		"firstName": {"Lucía"}, "lastName": {"Gómez"},
	})
	expectRedirect(t, w, "/")
	if b.cookie.Value == planted.Value {
		t.Fatal("registration kept the pre-login session id")
	}
	expectPage(t, b.get("/"), "Tu cuenta fue creada")

	other := h.browser()
	other.cookie = &planted
	expectRedirect(t, other.get("/mis-citas"), "/login")
}

func TestGuards(t *testing.T) {
	h := newHarness(t)
	h.user("cliente@test.com", models.RoleClient)

	anon := h.browser()
	expectRedirect(t, anon.get("/mis-citas"), "/login")

	anonJSON := h.browser()
	anonJSON.json = true
	if w := anonJSON.get("/mis-citas"); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous JSON status = %d, want 401", w.Code)
	}

	client := h.browser()
	client.login("cliente@test.com")
	expectRedirect(t, client.get("/admin/inicio"), "/")
	expectRedirect(t, client.get("/prestador/horarios"), "/")

	client.json = true
	if w := client.get("/admin/usuarios"); w.Code != http.StatusForbidden {
		t.Errorf("client JSON on admin page = %d, want 403", w.Code)
	}
}

func TestRevokedTokenEndsSession(t *testing.T) {
	h := newHarness(t)
	u := h.user("cliente@test.com", models.RoleClient)

	b := h.browser()
	b.login("cliente@test.com")
	h.fake.RevokeTokens(u.ID)

	expectRedirect(t, b.get("/mis-citas"), "/login")
	// the session is gone, not just this request
	expectRedirect(t, b.get("/perfil"), "/login")

	w := b.get("/login")
	expectPage(t, w, "Tu sesión expiró")
}

func TestProfileRefresh(t *testing.T) {
	h := newHarness(t)
	h.user("cliente@test.com", models.RoleClient)

	b := h.browser()
	b.login("cliente@test.com")
	expectPage(t, b.get("/perfil"), "cliente@test.com", "Cliente")

	h.fake.FailNext(http.MethodGet, "/auth/profile", http.StatusInternalServerError, "caído")
	expectPage(t, b.get("/perfil"), "cliente@test.com")
}

func TestHomeNegotiatesJSON(t *testing.T) {
	h := newHarness(t)
	h.fake.AddService(models.Service{Name: "Corte", Price: 20, Duration: 30, IsActive: true})
	h.fake.AddService(models.Service{Name: "Tinte", Price: 50, Duration: 90, IsActive: false})

	expectPage(t, h.browser().get("/"), "Corte")

	b := h.browser()
	b.json = true
	w := b.get("/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list []models.Service
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Corte" {
		t.Errorf("active services = %+v", list)
	}
}

func TestHealthz(t *testing.T) {
	h := newHarness(t)
	w := h.browser().get("/healthz")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("healthz = %d %s", w.Code, w.Body.String())
	}
}

func TestBookingFlow(t *testing.T) {
	h := newHarness(t)
	provider := h.user("prestador@test.com", models.RoleProvider)
	h.user("cliente@test.com", models.RoleClient)
	svc := h.fake.AddService(models.Service{Name: "Corte", Price: 20, Duration: 30, IsActive: true, ProviderID: provider.ID})
	slot := h.fake.AddSlot(models.ServiceSlot{ServiceID: svc.ID, Date: slotDate, StartTime: "10:00", EndTime: "10:30"})

	b := h.browser()
	b.login("cliente@test.com")

	query := "/reservar?serviceId=" + strconv.FormatInt(svc.ID, 10) + "&date=" + slotDate
	expectPage(t, b.get(query), "10:00 - 10:30")

	expectRedirect(t, b.post("/reservar/slot", url.Values{"slotId": {strconv.FormatInt(slot.ID, 10)}}), "/reservar")
	expectPage(t, b.get("/reservar"), "Confirmar", "Corte")

	expectRedirect(t, b.post("/reservar", url.Values{"notes": {"sin prisa"}}), "/reservar")
	if got := h.fake.Slot(slot.ID).Status; got != models.SlotReserved {
		t.Errorf("slot status = %s, want reserved", got)
	}

	w := b.get("/reservar")
	expectPage(t, w, "Cita reservada para el "+slotDate)
	if !strings.Contains(w.Body.String(), "No hay horarios disponibles") {
		t.Error("the booked slot should no longer be offered")
	}

	expectPage(t, b.get("/mis-citas"), "Corte", "Pendiente")
}

func TestBookingRaceOffersOnlyFreshSlots(t *testing.T) {
	h := newHarness(t)
	provider := h.user("prestador@test.com", models.RoleProvider)
	h.user("ana@test.com", models.RoleClient)
	h.user("luz@test.com", models.RoleClient)
	svc := h.fake.AddService(models.Service{Name: "Corte", Price: 20, Duration: 30, IsActive: true, ProviderID: provider.ID})
	slot := h.fake.AddSlot(models.ServiceSlot{ServiceID: svc.ID, Date: slotDate, StartTime: "10:00", EndTime: "10:30"})
	h.fake.AddSlot(models.ServiceSlot{ServiceID: svc.ID, Date: slotDate, StartTime: "11:00", EndTime: "11:30"})

	query := "/reservar?serviceId=" + strconv.FormatInt(svc.ID, 10) + "&date=" + slotDate
	pick := url.Values{"slotId": {strconv.FormatInt(slot.ID, 10)}}
	ana, luz := h.browser(), h.browser()
	ana.login("ana@test.com")
	luz.login("luz@test.com")
	for _, b := range []*browser{ana, luz} {
		expectPage(t, b.get(query), "10:00 - 10:30")
		expectRedirect(t, b.post("/reservar/slot", pick), "/reservar")
	}

	expectRedirect(t, luz.post("/reservar", url.Values{}), "/reservar")

	w := ana.post("/reservar", url.Values{})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `class="form-error"`) || !strings.Contains(body, "ya no está disponible") {
		t.Error("expected the conflict as an inline form error")
	}
	if strings.Contains(body, "10:00 - 10:30") || !strings.Contains(body, "11:00 - 11:30") {
		t.Error("the re-rendered form should offer only the slots still free")
	}
}

func TestBookingPageRefetchesAvailability(t *testing.T) {
	h := newHarness(t)
	provider := h.user("prestador@test.com", models.RoleProvider)
	h.user("ana@test.com", models.RoleClient)
	h.user("luz@test.com", models.RoleClient)
	svc := h.fake.AddService(models.Service{Name: "Corte", Price: 20, Duration: 30, IsActive: true, ProviderID: provider.ID})
	slot := h.fake.AddSlot(models.ServiceSlot{ServiceID: svc.ID, Date: slotDate, StartTime: "10:00", EndTime: "10:30"})

	query := "/reservar?serviceId=" + strconv.FormatInt(svc.ID, 10) + "&date=" + slotDate
	ana := h.browser()
	ana.login("ana@test.com")
	expectPage(t, ana.get(query), "10:00 - 10:30")

	luz := h.browser()
	luz.login("luz@test.com")
	expectPage(t, luz.get(query), "10:00 - 10:30")
	expectRedirect(t, luz.post("/reservar", url.Values{"slotId": {strconv.FormatInt(slot.ID, 10)}}), "/reservar")

	w := ana.get("/reservar")
	expectPage(t, w, "No hay horarios disponibles")
	if strings.Contains(w.Body.String(), "10:00 - 10:30") {
		t.Error("a slot booked elsewhere is still offered")
	}
}

func TestBookingWithoutSelectionShowsInlineError(t *testing.T) {
	h := newHarness(t)
	h.user("cliente@test.com", models.RoleClient)
	b := h.browser()
	b.login("cliente@test.com")

	w := b.post("/reservar", url.Values{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), `class="form-error"`) {
		t.Error("expected an inline form error")
	}
	if n := h.fake.Calls(http.MethodPost, "/appointments"); n != 0 {
		t.Errorf("appointment create calls = %d, want 0", n)
	}
}

func TestProviderGeneratesSlots(t *testing.T) {
	h := newHarness(t)
	provider := h.user("prestador@test.com", models.RoleProvider)
	svc := h.fake.AddService(models.Service{Name: "Manicure", Price: 15, Duration: 60, IsActive: true, ProviderID: provider.ID})

	b := h.browser()
	b.login("prestador@test.com")
	expectPage(t, b.get("/prestador/horarios?date="+slotDate), "Manicure")

	form := url.Values{
		"serviceId":       {strconv.FormatInt(svc.ID, 10)},
		"date":            {slotDate},
		"startTime":       {"09:00"},
		"endTime":         {"12:00"},
		"durationMinutes": {"30"},
	}
	expectRedirect(t, b.post("/prestador/horarios/generar", form), "/prestador/horarios?date="+slotDate)

	b.json = true
	w := b.get("/prestador/horarios?date=" + slotDate)
	var page struct {
		Slots []booking.SlotItem `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Slots) != 6 {
		t.Fatalf("slots = %d, want 6", len(page.Slots))
	}
}

func TestProviderGenerateRejectsBadWindowLocally(t *testing.T) {
	h := newHarness(t)
	provider := h.user("prestador@test.com", models.RoleProvider)
	svc := h.fake.AddService(models.Service{Name: "Manicure", Price: 15, Duration: 60, IsActive: true, ProviderID: provider.ID})

	b := h.browser()
	b.login("prestador@test.com")
	w := b.post("/prestador/horarios/generar", url.Values{
		"serviceId": {strconv.FormatInt(svc.ID, 10)},
		"date":      {slotDate},
		"startTime": {"12:00"},
		"endTime":   {"09:00"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), `value="12:00"`) {
		t.Error("submitted values were not kept")
	}
	if n := h.fake.Calls(http.MethodPost, "/service-slots/generate"); n != 0 {
		t.Errorf("generate calls = %d, want 0", n)
	}
}

func TestSlotStatusFailureReverts(t *testing.T) {
	h := newHarness(t)
	provider := h.user("prestador@test.com", models.RoleProvider)
	svc := h.fake.AddService(models.Service{Name: "Manicure", Price: 15, Duration: 60, IsActive: true, ProviderID: provider.ID})
	slot := h.fake.AddSlot(models.ServiceSlot{ServiceID: svc.ID, Date: slotDate, StartTime: "09:00", EndTime: "10:00"})

	b := h.browser()
	b.login("prestador@test.com")
	expectPage(t, b.get("/prestador/horarios?date="+slotDate), "Disponible")

	path := "/service-slots/" + strconv.FormatInt(slot.ID, 10) + "/status"
	h.fake.FailNext(http.MethodPatch, path, http.StatusInternalServerError, "Error interno")

	action := "/prestador/horarios/" + strconv.FormatInt(slot.ID, 10) + "/estado"
	back := "/prestador/horarios?date=" + slotDate
	expectRedirect(t, b.post(action, url.Values{"status": {"blocked"}, "date": {slotDate}}), back)
	if got := h.fake.Slot(slot.ID).Status; got != models.SlotAvailable {
		t.Errorf("server slot = %s, want available", got)
	}
	w := b.get(back)
	expectPage(t, w, "Error interno", "Disponible")

	expectRedirect(t, b.post(action, url.Values{"status": {"blocked"}, "date": {slotDate}}), back)
	if got := h.fake.Slot(slot.ID).Status; got != models.SlotBlocked {
		t.Errorf("server slot = %s, want blocked", got)
	}
	expectPage(t, b.get(back), "Horario marcado como Bloqueado")
}

func TestProviderServiceValidationKeepsValues(t *testing.T) {
	h := newHarness(t)
	h.user("prestador@test.com", models.RoleProvider)
	b := h.browser()
	b.login("prestador@test.com")

	w := b.post("/prestador/servicios", url.Values{"name": {"Peinado"}, "price": {"10"}, "duration": {"0"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `value="Peinado"`) {
		t.Error("name was not kept")
	}

	expectRedirect(t, b.post("/prestador/servicios", url.Values{"name": {"Peinado"}, "price": {"10"}, "duration": {"45"}}), "/prestador/servicios")
	expectPage(t, b.get("/prestador/servicios"), "Peinado", "45 min")
}

func TestAdminPagesRender(t *testing.T) {
	h := newHarness(t)
	provider := h.user("prestador@test.com", models.RoleProvider)
	client := h.user("cliente@test.com", models.RoleClient)
	h.user("admin@test.com", models.RoleAdmin)
	svc := h.fake.AddService(models.Service{Name: "Corte", Price: 20, Duration: 30, IsActive: true, ProviderID: provider.ID})
	h.fake.AddAppointment(models.Appointment{
		ClientID: client.ID, StaffID: provider.ID, ServiceID: svc.ID,
		Date: slotDate, StartTime: "10:00", Status: models.StatusConfirmed,
	})

	b := h.browser()
	b.login("admin@test.com")
	expectPage(t, b.get("/admin/inicio"), "Ingresos estimados")
	expectPage(t, b.get("/admin/citas"), "Corte", "Completada")
	expectPage(t, b.get("/admin/usuarios"), "prestador@test.com")
	expectPage(t, b.get("/admin/servicios"), "Corte")
	expectPage(t, b.get("/admin/reportes"), "Descargar PDF")
}

func TestAdminCreatesUserWithBadPhone(t *testing.T) {
	h := newHarness(t)
	h.user("admin@test.com", models.RoleAdmin)
	b := h.browser()
	b.login("admin@test.com")

	w := b.post("/admin/usuarios", url.Values{
		"email": {"nuevo@test.com"}, "password": {"secreto123"},
		"firstName": {"Luz"}, "lastName": {"Gómez"}, "phone": {"abc"}, "role": {"cliente"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "teléfono") || !strings.Contains(w.Body.String(), `value="nuevo@test.com"`) {
		t.Error("expected inline phone error with values kept")
	}
	if n := h.fake.Calls(http.MethodPost, "/users"); n != 0 {
		t.Errorf("create calls = %d, want 0", n)
	}
}

func TestAppointmentStatusRoundTrip(t *testing.T) {
	h := newHarness(t)
	provider := h.user("prestador@test.com", models.RoleProvider)
	client := h.user("cliente@test.com", models.RoleClient)
	svc := h.fake.AddService(models.Service{Name: "Corte", Price: 20, Duration: 30, IsActive: true, ProviderID: provider.ID})
	appt := h.fake.AddAppointment(models.Appointment{
		ClientID: client.ID, StaffID: provider.ID, ServiceID: svc.ID,
		Date: slotDate, StartTime: "10:00", Status: models.StatusPending,
	})

	b := h.browser()
	b.login("prestador@test.com")
	action := "/prestador/citas/" + strconv.FormatInt(appt.ID, 10) + "/estado"

	// completing a pending appointment is not a forward transition
	expectRedirect(t, b.post(action, url.Values{"current": {"pendiente"}, "status": {"completada"}}), "/prestador/citas")
	if n := h.fake.Calls(http.MethodPatch, "/appointments/"+strconv.FormatInt(appt.ID, 10)+"/status"); n != 0 {
		t.Errorf("illegal transition reached the server %d times", n)
	}

	expectRedirect(t, b.post(action, url.Values{"current": {"pendiente"}, "status": {"confirmada"}}), "/prestador/citas")
	if got := h.fake.Appointment(appt.ID).Status; got != models.StatusConfirmed {
		t.Errorf("status = %s, want confirmada", got)
	}
	expectPage(t, b.get("/prestador/citas"), "Cita marcada como Confirmada", "Completada")
}

func TestReportExport(t *testing.T) {
	h := newHarness(t)
	h.user("admin@test.com", models.RoleAdmin)
	b := h.browser()
	b.login("admin@test.com")

	w := b.get("/admin/reportes/export/pdf?period=month&year=2026")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "reporte-month.pdf") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	h.fake.FailNext(http.MethodGet, "/reports/export/excel", http.StatusInternalServerError, "Sin datos")
	expectRedirect(t, b.get("/admin/reportes/export/excel?period=month&year=2026"), "/admin/reportes?period=month&year=2026")
	expectPage(t, b.get("/admin/reportes?period=month&year=2026"), "Sin datos")
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	h.user("cliente@test.com", models.RoleClient)
	b := h.browser()
	b.login("cliente@test.com")

	expectRedirect(t, b.post("/logout", nil), "/login")
	expectRedirect(t, b.get("/mis-citas"), "/login")
}
