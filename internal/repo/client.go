// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/amparasaude/ampara_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/amparasaude/ampara_backend/internal/repo/carelink"
	"github.com/amparasaude/ampara_backend/internal/repo/clinic"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicmember"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicpermission"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicsettings"
	"github.com/amparasaude/ampara_backend/internal/repo/diaryentry"
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationaward"
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationreward"
	"github.com/amparasaude/ampara_backend/internal/repo/notification"
	"github.com/amparasaude/ampara_backend/internal/repo/notificationpref"
	"github.com/amparasaude/ampara_backend/internal/repo/patient"
	"github.com/amparasaude/ampara_backend/internal/repo/psychologistprofile"
	"github.com/amparasaude/ampara_backend/internal/repo/session"
	"github.com/amparasaude/ampara_backend/internal/repo/unavailability"
	"github.com/amparasaude/ampara_backend/internal/repo/user"
	"github.com/amparasaude/ampara_backend/internal/repo/userdevice"
	"github.com/amparasaude/ampara_backend/internal/repo/userprogress"
	"github.com/amparasaude/ampara_backend/internal/repo/usersession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CareLink is the client for interacting with the CareLink builders.
	CareLink *CareLinkClient
	// Clinic is the client for interacting with the Clinic builders.
	Clinic *ClinicClient
	// ClinicMember is the client for interacting with the ClinicMember builders.
	ClinicMember *ClinicMemberClient
	// ClinicPermission is the client for interacting with the ClinicPermission builders.
	ClinicPermission *ClinicPermissionClient
	// ClinicSettings is the client for interacting with the ClinicSettings builders.
	ClinicSettings *ClinicSettingsClient
	// DiaryEntry is the client for interacting with the DiaryEntry builders.
	DiaryEntry *DiaryEntryClient
	// GamificationAward is the client for interacting with the GamificationAward builders.
	GamificationAward *GamificationAwardClient
	// GamificationReward is the client for interacting with the GamificationReward builders.
	GamificationReward *GamificationRewardClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// NotificationPref is the client for interacting with the NotificationPref builders.
	NotificationPref *NotificationPrefClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// PsychologistProfile is the client for interacting with the PsychologistProfile builders.
	PsychologistProfile *PsychologistProfileClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// Unavailability is the client for interacting with the Unavailability builders.
	Unavailability *UnavailabilityClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserDevice is the client for interacting with the UserDevice builders.
	UserDevice *UserDeviceClient
	// UserProgress is the client for interacting with the UserProgress builders.
	UserProgress *UserProgressClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CareLink = NewCareLinkClient(c.config)
	c.Clinic = NewClinicClient(c.config)
	c.ClinicMember = NewClinicMemberClient(c.config)
	c.ClinicPermission = NewClinicPermissionClient(c.config)
	c.ClinicSettings = NewClinicSettingsClient(c.config)
	c.DiaryEntry = NewDiaryEntryClient(c.config)
	c.GamificationAward = NewGamificationAwardClient(c.config)
	c.GamificationReward = NewGamificationRewardClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.NotificationPref = NewNotificationPrefClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.PsychologistProfile = NewPsychologistProfileClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.Unavailability = NewUnavailabilityClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserDevice = NewUserDeviceClient(c.config)
	c.UserProgress = NewUserProgressClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		CareLink:            NewCareLinkClient(cfg),
		Clinic:              NewClinicClient(cfg),
		ClinicMember:        NewClinicMemberClient(cfg),
		ClinicPermission:    NewClinicPermissionClient(cfg),
		ClinicSettings:      NewClinicSettingsClient(cfg),
		DiaryEntry:          NewDiaryEntryClient(cfg),
		GamificationAward:   NewGamificationAwardClient(cfg),
		GamificationReward:  NewGamificationRewardClient(cfg),
		Notification:        NewNotificationClient(cfg),
		NotificationPref:    NewNotificationPrefClient(cfg),
		Patient:             NewPatientClient(cfg),
		PsychologistProfile: NewPsychologistProfileClient(cfg),
		Session:             NewSessionClient(cfg),
		Unavailability:      NewUnavailabilityClient(cfg),
		User:                NewUserClient(cfg),
		UserDevice:          NewUserDeviceClient(cfg),
		UserProgress:        NewUserProgressClient(cfg),
		UserSession:         NewUserSessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		CareLink:            NewCareLinkClient(cfg),
		Clinic:              NewClinicClient(cfg),
		ClinicMember:        NewClinicMemberClient(cfg),
		ClinicPermission:    NewClinicPermissionClient(cfg),
		ClinicSettings:      NewClinicSettingsClient(cfg),
		DiaryEntry:          NewDiaryEntryClient(cfg),
		GamificationAward:   NewGamificationAwardClient(cfg),
		GamificationReward:  NewGamificationRewardClient(cfg),
		Notification:        NewNotificationClient(cfg),
		NotificationPref:    NewNotificationPrefClient(cfg),
		Patient:             NewPatientClient(cfg),
		PsychologistProfile: NewPsychologistProfileClient(cfg),
		Session:             NewSessionClient(cfg),
		Unavailability:      NewUnavailabilityClient(cfg),
		User:                NewUserClient(cfg),
		UserDevice:          NewUserDeviceClient(cfg),
		UserProgress:        NewUserProgressClient(cfg),
		UserSession:         NewUserSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CareLink.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.CareLink, c.Clinic, c.ClinicMember, c.ClinicPermission, c.ClinicSettings,
		c.DiaryEntry, c.GamificationAward, c.GamificationReward, c.Notification,
		c.NotificationPref, c.Patient, c.PsychologistProfile, c.Session,
		c.Unavailability, c.User, c.UserDevice, c.UserProgress, c.UserSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CareLink, c.Clinic, c.ClinicMember, c.ClinicPermission, c.ClinicSettings,
		c.DiaryEntry, c.GamificationAward, c.GamificationReward, c.Notification,
		c.NotificationPref, c.Patient, c.PsychologistProfile, c.Session,
		c.Unavailability, c.User, c.UserDevice, c.UserProgress, c.UserSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CareLinkMutation:
		return c.CareLink.mutate(ctx, m)
	case *ClinicMutation:
		return c.Clinic.mutate(ctx, m)
	case *ClinicMemberMutation:
		return c.ClinicMember.mutate(ctx, m)
	case *ClinicPermissionMutation:
		return c.ClinicPermission.mutate(ctx, m)
	case *ClinicSettingsMutation:
		return c.ClinicSettings.mutate(ctx, m)
	case *DiaryEntryMutation:
		return c.DiaryEntry.mutate(ctx, m)
	case *GamificationAwardMutation:
		return c.GamificationAward.mutate(ctx, m)
	case *GamificationRewardMutation:
		return c.GamificationReward.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *NotificationPrefMutation:
		return c.NotificationPref.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *PsychologistProfileMutation:
		return c.PsychologistProfile.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *UnavailabilityMutation:
		return c.Unavailability.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserDeviceMutation:
		return c.UserDevice.mutate(ctx, m)
	case *UserProgressMutation:
		return c.UserProgress.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// CareLinkClient is a client for the CareLink schema.
type CareLinkClient struct {
	config
}

// NewCareLinkClient returns a client for the CareLink from the given config.
func NewCareLinkClient(c config) *CareLinkClient {
	return &CareLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `carelink.Hooks(f(g(h())))`.
func (c *CareLinkClient) Use(hooks ...Hook) {
	c.hooks.CareLink = append(c.hooks.CareLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `carelink.Intercept(f(g(h())))`.
func (c *CareLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.CareLink = append(c.inters.CareLink, interceptors...)
}

// Create returns a builder for creating a CareLink entity.
func (c *CareLinkClient) Create() *CareLinkCreate {
	mutation := newCareLinkMutation(c.config, OpCreate)
	return &CareLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CareLink entities.
func (c *CareLinkClient) CreateBulk(builders ...*CareLinkCreate) *CareLinkCreateBulk {
	return &CareLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CareLinkClient) MapCreateBulk(slice any, setFunc func(*CareLinkCreate, int)) *CareLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CareLinkCreateBulk{err: fmt.Errorf("calling to CareLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CareLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CareLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CareLink.
func (c *CareLinkClient) Update() *CareLinkUpdate {
	mutation := newCareLinkMutation(c.config, OpUpdate)
	return &CareLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CareLinkClient) UpdateOne(_m *CareLink) *CareLinkUpdateOne {
	mutation := newCareLinkMutation(c.config, OpUpdateOne, withCareLink(_m))
	return &CareLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CareLinkClient) UpdateOneID(id uuid.UUID) *CareLinkUpdateOne {
	mutation := newCareLinkMutation(c.config, OpUpdateOne, withCareLinkID(id))
	return &CareLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CareLink.
func (c *CareLinkClient) Delete() *CareLinkDelete {
	mutation := newCareLinkMutation(c.config, OpDelete)
	return &CareLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CareLinkClient) DeleteOne(_m *CareLink) *CareLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CareLinkClient) DeleteOneID(id uuid.UUID) *CareLinkDeleteOne {
	builder := c.Delete().Where(carelink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CareLinkDeleteOne{builder}
}

// Query returns a query builder for CareLink.
func (c *CareLinkClient) Query() *CareLinkQuery {
	return &CareLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCareLink},
		inters: c.Interceptors(),
	}
}

// Get returns a CareLink entity by its id.
func (c *CareLinkClient) Get(ctx context.Context, id uuid.UUID) (*CareLink, error) {
	return c.Query().Where(carelink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CareLinkClient) GetX(ctx context.Context, id uuid.UUID) *CareLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CareLinkClient) Hooks() []Hook {
	return c.hooks.CareLink
}

// Interceptors returns the client interceptors.
func (c *CareLinkClient) Interceptors() []Interceptor {
	return c.inters.CareLink
}

func (c *CareLinkClient) mutate(ctx context.Context, m *CareLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CareLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CareLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CareLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CareLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown CareLink mutation op: %q", m.Op())
	}
}

// ClinicClient is a client for the Clinic schema.
type ClinicClient struct {
	config
}

// NewClinicClient returns a client for the Clinic from the given config.
func NewClinicClient(c config) *ClinicClient {
	return &ClinicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinic.Hooks(f(g(h())))`.
func (c *ClinicClient) Use(hooks ...Hook) {
	c.hooks.Clinic = append(c.hooks.Clinic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinic.Intercept(f(g(h())))`.
func (c *ClinicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Clinic = append(c.inters.Clinic, interceptors...)
}

// Create returns a builder for creating a Clinic entity.
func (c *ClinicClient) Create() *ClinicCreate {
	mutation := newClinicMutation(c.config, OpCreate)
	return &ClinicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Clinic entities.
func (c *ClinicClient) CreateBulk(builders ...*ClinicCreate) *ClinicCreateBulk {
	return &ClinicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicClient) MapCreateBulk(slice any, setFunc func(*ClinicCreate, int)) *ClinicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicCreateBulk{err: fmt.Errorf("calling to ClinicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Clinic.
func (c *ClinicClient) Update() *ClinicUpdate {
	mutation := newClinicMutation(c.config, OpUpdate)
	return &ClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicClient) UpdateOne(_m *Clinic) *ClinicUpdateOne {
	mutation := newClinicMutation(c.config, OpUpdateOne, withClinic(_m))
	return &ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicClient) UpdateOneID(id uuid.UUID) *ClinicUpdateOne {
	mutation := newClinicMutation(c.config, OpUpdateOne, withClinicID(id))
	return &ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Clinic.
func (c *ClinicClient) Delete() *ClinicDelete {
	mutation := newClinicMutation(c.config, OpDelete)
	return &ClinicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicClient) DeleteOne(_m *Clinic) *ClinicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicClient) DeleteOneID(id uuid.UUID) *ClinicDeleteOne {
	builder := c.Delete().Where(clinic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicDeleteOne{builder}
}

// Query returns a query builder for Clinic.
func (c *ClinicClient) Query() *ClinicQuery {
	return &ClinicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinic},
		inters: c.Interceptors(),
	}
}

// Get returns a Clinic entity by its id.
func (c *ClinicClient) Get(ctx context.Context, id uuid.UUID) (*Clinic, error) {
	return c.Query().Where(clinic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicClient) GetX(ctx context.Context, id uuid.UUID) *Clinic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMembers queries the members edge of a Clinic.
func (c *ClinicClient) QueryMembers(_m *Clinic) *ClinicMemberQuery {
	query := (&ClinicMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinic.Table, clinic.FieldID, id),
			sqlgraph.To(clinicmember.Table, clinicmember.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clinic.MembersTable, clinic.MembersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPatients queries the patients edge of a Clinic.
func (c *ClinicClient) QueryPatients(_m *Clinic) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinic.Table, clinic.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clinic.PatientsTable, clinic.PatientsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPermissions queries the permissions edge of a Clinic.
func (c *ClinicClient) QueryPermissions(_m *Clinic) *ClinicPermissionQuery {
	query := (&ClinicPermissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinic.Table, clinic.FieldID, id),
			sqlgraph.To(clinicpermission.Table, clinicpermission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clinic.PermissionsTable, clinic.PermissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySettings queries the settings edge of a Clinic.
func (c *ClinicClient) QuerySettings(_m *Clinic) *ClinicSettingsQuery {
	query := (&ClinicSettingsClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinic.Table, clinic.FieldID, id),
			sqlgraph.To(clinicsettings.Table, clinicsettings.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, clinic.SettingsTable, clinic.SettingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClinicClient) Hooks() []Hook {
	return c.hooks.Clinic
}

// Interceptors returns the client interceptors.
func (c *ClinicClient) Interceptors() []Interceptor {
	return c.inters.Clinic
}

func (c *ClinicClient) mutate(ctx context.Context, m *ClinicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Clinic mutation op: %q", m.Op())
	}
}

// ClinicMemberClient is a client for the ClinicMember schema.
type ClinicMemberClient struct {
	config
}

// NewClinicMemberClient returns a client for the ClinicMember from the given config.
func NewClinicMemberClient(c config) *ClinicMemberClient {
	return &ClinicMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinicmember.Hooks(f(g(h())))`.
func (c *ClinicMemberClient) Use(hooks ...Hook) {
	c.hooks.ClinicMember = append(c.hooks.ClinicMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinicmember.Intercept(f(g(h())))`.
func (c *ClinicMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClinicMember = append(c.inters.ClinicMember, interceptors...)
}

// Create returns a builder for creating a ClinicMember entity.
func (c *ClinicMemberClient) Create() *ClinicMemberCreate {
	mutation := newClinicMemberMutation(c.config, OpCreate)
	return &ClinicMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClinicMember entities.
func (c *ClinicMemberClient) CreateBulk(builders ...*ClinicMemberCreate) *ClinicMemberCreateBulk {
	return &ClinicMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicMemberClient) MapCreateBulk(slice any, setFunc func(*ClinicMemberCreate, int)) *ClinicMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicMemberCreateBulk{err: fmt.Errorf("calling to ClinicMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClinicMember.
func (c *ClinicMemberClient) Update() *ClinicMemberUpdate {
	mutation := newClinicMemberMutation(c.config, OpUpdate)
	return &ClinicMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicMemberClient) UpdateOne(_m *ClinicMember) *ClinicMemberUpdateOne {
	mutation := newClinicMemberMutation(c.config, OpUpdateOne, withClinicMember(_m))
	return &ClinicMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicMemberClient) UpdateOneID(id uuid.UUID) *ClinicMemberUpdateOne {
	mutation := newClinicMemberMutation(c.config, OpUpdateOne, withClinicMemberID(id))
	return &ClinicMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClinicMember.
func (c *ClinicMemberClient) Delete() *ClinicMemberDelete {
	mutation := newClinicMemberMutation(c.config, OpDelete)
	return &ClinicMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicMemberClient) DeleteOne(_m *ClinicMember) *ClinicMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicMemberClient) DeleteOneID(id uuid.UUID) *ClinicMemberDeleteOne {
	builder := c.Delete().Where(clinicmember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicMemberDeleteOne{builder}
}

// Query returns a query builder for ClinicMember.
func (c *ClinicMemberClient) Query() *ClinicMemberQuery {
	return &ClinicMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinicMember},
		inters: c.Interceptors(),
	}
}

// Get returns a ClinicMember entity by its id.
func (c *ClinicMemberClient) Get(ctx context.Context, id uuid.UUID) (*ClinicMember, error) {
	return c.Query().Where(clinicmember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicMemberClient) GetX(ctx context.Context, id uuid.UUID) *ClinicMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClinic queries the clinic edge of a ClinicMember.
func (c *ClinicMemberClient) QueryClinic(_m *ClinicMember) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinicmember.Table, clinicmember.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clinicmember.ClinicTable, clinicmember.ClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUser queries the user edge of a ClinicMember.
func (c *ClinicMemberClient) QueryUser(_m *ClinicMember) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinicmember.Table, clinicmember.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, clinicmember.UserTable, clinicmember.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPsychologistProfile queries the psychologist_profile edge of a ClinicMember.
func (c *ClinicMemberClient) QueryPsychologistProfile(_m *ClinicMember) *PsychologistProfileQuery {
	query := (&PsychologistProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinicmember.Table, clinicmember.FieldID, id),
			sqlgraph.To(psychologistprofile.Table, psychologistprofile.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, clinicmember.PsychologistProfileTable, clinicmember.PsychologistProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClinicMemberClient) Hooks() []Hook {
	return c.hooks.ClinicMember
}

// Interceptors returns the client interceptors.
func (c *ClinicMemberClient) Interceptors() []Interceptor {
	return c.inters.ClinicMember
}

func (c *ClinicMemberClient) mutate(ctx context.Context, m *ClinicMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ClinicMember mutation op: %q", m.Op())
	}
}

// ClinicPermissionClient is a client for the ClinicPermission schema.
type ClinicPermissionClient struct {
	config
}

// NewClinicPermissionClient returns a client for the ClinicPermission from the given config.
func NewClinicPermissionClient(c config) *ClinicPermissionClient {
	return &ClinicPermissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinicpermission.Hooks(f(g(h())))`.
func (c *ClinicPermissionClient) Use(hooks ...Hook) {
	c.hooks.ClinicPermission = append(c.hooks.ClinicPermission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinicpermission.Intercept(f(g(h())))`.
func (c *ClinicPermissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClinicPermission = append(c.inters.ClinicPermission, interceptors...)
}

// Create returns a builder for creating a ClinicPermission entity.
func (c *ClinicPermissionClient) Create() *ClinicPermissionCreate {
	mutation := newClinicPermissionMutation(c.config, OpCreate)
	return &ClinicPermissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClinicPermission entities.
func (c *ClinicPermissionClient) CreateBulk(builders ...*ClinicPermissionCreate) *ClinicPermissionCreateBulk {
	return &ClinicPermissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicPermissionClient) MapCreateBulk(slice any, setFunc func(*ClinicPermissionCreate, int)) *ClinicPermissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicPermissionCreateBulk{err: fmt.Errorf("calling to ClinicPermissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicPermissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicPermissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClinicPermission.
func (c *ClinicPermissionClient) Update() *ClinicPermissionUpdate {
	mutation := newClinicPermissionMutation(c.config, OpUpdate)
	return &ClinicPermissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicPermissionClient) UpdateOne(_m *ClinicPermission) *ClinicPermissionUpdateOne {
	mutation := newClinicPermissionMutation(c.config, OpUpdateOne, withClinicPermission(_m))
	return &ClinicPermissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicPermissionClient) UpdateOneID(id uuid.UUID) *ClinicPermissionUpdateOne {
	mutation := newClinicPermissionMutation(c.config, OpUpdateOne, withClinicPermissionID(id))
	return &ClinicPermissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClinicPermission.
func (c *ClinicPermissionClient) Delete() *ClinicPermissionDelete {
	mutation := newClinicPermissionMutation(c.config, OpDelete)
	return &ClinicPermissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicPermissionClient) DeleteOne(_m *ClinicPermission) *ClinicPermissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicPermissionClient) DeleteOneID(id uuid.UUID) *ClinicPermissionDeleteOne {
	builder := c.Delete().Where(clinicpermission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicPermissionDeleteOne{builder}
}

// Query returns a query builder for ClinicPermission.
func (c *ClinicPermissionClient) Query() *ClinicPermissionQuery {
	return &ClinicPermissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinicPermission},
		inters: c.Interceptors(),
	}
}

// Get returns a ClinicPermission entity by its id.
func (c *ClinicPermissionClient) Get(ctx context.Context, id uuid.UUID) (*ClinicPermission, error) {
	return c.Query().Where(clinicpermission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicPermissionClient) GetX(ctx context.Context, id uuid.UUID) *ClinicPermission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClinic queries the clinic edge of a ClinicPermission.
func (c *ClinicPermissionClient) QueryClinic(_m *ClinicPermission) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinicpermission.Table, clinicpermission.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clinicpermission.ClinicTable, clinicpermission.ClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUser queries the user edge of a ClinicPermission.
func (c *ClinicPermissionClient) QueryUser(_m *ClinicPermission) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinicpermission.Table, clinicpermission.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, clinicpermission.UserTable, clinicpermission.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClinicPermissionClient) Hooks() []Hook {
	return c.hooks.ClinicPermission
}

// Interceptors returns the client interceptors.
func (c *ClinicPermissionClient) Interceptors() []Interceptor {
	return c.inters.ClinicPermission
}

func (c *ClinicPermissionClient) mutate(ctx context.Context, m *ClinicPermissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicPermissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicPermissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicPermissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicPermissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ClinicPermission mutation op: %q", m.Op())
	}
}

// ClinicSettingsClient is a client for the ClinicSettings schema.
type ClinicSettingsClient struct {
	config
}

// NewClinicSettingsClient returns a client for the ClinicSettings from the given config.
func NewClinicSettingsClient(c config) *ClinicSettingsClient {
	return &ClinicSettingsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinicsettings.Hooks(f(g(h())))`.
func (c *ClinicSettingsClient) Use(hooks ...Hook) {
	c.hooks.ClinicSettings = append(c.hooks.ClinicSettings, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinicsettings.Intercept(f(g(h())))`.
func (c *ClinicSettingsClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClinicSettings = append(c.inters.ClinicSettings, interceptors...)
}

// Create returns a builder for creating a ClinicSettings entity.
func (c *ClinicSettingsClient) Create() *ClinicSettingsCreate {
	mutation := newClinicSettingsMutation(c.config, OpCreate)
	return &ClinicSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClinicSettings entities.
func (c *ClinicSettingsClient) CreateBulk(builders ...*ClinicSettingsCreate) *ClinicSettingsCreateBulk {
	return &ClinicSettingsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicSettingsClient) MapCreateBulk(slice any, setFunc func(*ClinicSettingsCreate, int)) *ClinicSettingsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicSettingsCreateBulk{err: fmt.Errorf("calling to ClinicSettingsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicSettingsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicSettingsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClinicSettings.
func (c *ClinicSettingsClient) Update() *ClinicSettingsUpdate {
	mutation := newClinicSettingsMutation(c.config, OpUpdate)
	return &ClinicSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicSettingsClient) UpdateOne(_m *ClinicSettings) *ClinicSettingsUpdateOne {
	mutation := newClinicSettingsMutation(c.config, OpUpdateOne, withClinicSettings(_m))
	return &ClinicSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicSettingsClient) UpdateOneID(id uuid.UUID) *ClinicSettingsUpdateOne {
	mutation := newClinicSettingsMutation(c.config, OpUpdateOne, withClinicSettingsID(id))
	return &ClinicSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClinicSettings.
func (c *ClinicSettingsClient) Delete() *ClinicSettingsDelete {
	mutation := newClinicSettingsMutation(c.config, OpDelete)
	return &ClinicSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicSettingsClient) DeleteOne(_m *ClinicSettings) *ClinicSettingsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicSettingsClient) DeleteOneID(id uuid.UUID) *ClinicSettingsDeleteOne {
	builder := c.Delete().Where(clinicsettings.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicSettingsDeleteOne{builder}
}

// Query returns a query builder for ClinicSettings.
func (c *ClinicSettingsClient) Query() *ClinicSettingsQuery {
	return &ClinicSettingsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinicSettings},
		inters: c.Interceptors(),
	}
}

// Get returns a ClinicSettings entity by its id.
func (c *ClinicSettingsClient) Get(ctx context.Context, id uuid.UUID) (*ClinicSettings, error) {
	return c.Query().Where(clinicsettings.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicSettingsClient) GetX(ctx context.Context, id uuid.UUID) *ClinicSettings {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClinic queries the clinic edge of a ClinicSettings.
func (c *ClinicSettingsClient) QueryClinic(_m *ClinicSettings) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinicsettings.Table, clinicsettings.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, clinicsettings.ClinicTable, clinicsettings.ClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClinicSettingsClient) Hooks() []Hook {
	return c.hooks.ClinicSettings
}

// Interceptors returns the client interceptors.
func (c *ClinicSettingsClient) Interceptors() []Interceptor {
	return c.inters.ClinicSettings
}

func (c *ClinicSettingsClient) mutate(ctx context.Context, m *ClinicSettingsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ClinicSettings mutation op: %q", m.Op())
	}
}

// DiaryEntryClient is a client for the DiaryEntry schema.
type DiaryEntryClient struct {
	config
}

// NewDiaryEntryClient returns a client for the DiaryEntry from the given config.
func NewDiaryEntryClient(c config) *DiaryEntryClient {
	return &DiaryEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `diaryentry.Hooks(f(g(h())))`.
func (c *DiaryEntryClient) Use(hooks ...Hook) {
	c.hooks.DiaryEntry = append(c.hooks.DiaryEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `diaryentry.Intercept(f(g(h())))`.
func (c *DiaryEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.DiaryEntry = append(c.inters.DiaryEntry, interceptors...)
}

// Create returns a builder for creating a DiaryEntry entity.
func (c *DiaryEntryClient) Create() *DiaryEntryCreate {
	mutation := newDiaryEntryMutation(c.config, OpCreate)
	return &DiaryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DiaryEntry entities.
func (c *DiaryEntryClient) CreateBulk(builders ...*DiaryEntryCreate) *DiaryEntryCreateBulk {
	return &DiaryEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiaryEntryClient) MapCreateBulk(slice any, setFunc func(*DiaryEntryCreate, int)) *DiaryEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiaryEntryCreateBulk{err: fmt.Errorf("calling to DiaryEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiaryEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiaryEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DiaryEntry.
func (c *DiaryEntryClient) Update() *DiaryEntryUpdate {
	mutation := newDiaryEntryMutation(c.config, OpUpdate)
	return &DiaryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiaryEntryClient) UpdateOne(_m *DiaryEntry) *DiaryEntryUpdateOne {
	mutation := newDiaryEntryMutation(c.config, OpUpdateOne, withDiaryEntry(_m))
	return &DiaryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiaryEntryClient) UpdateOneID(id uuid.UUID) *DiaryEntryUpdateOne {
	mutation := newDiaryEntryMutation(c.config, OpUpdateOne, withDiaryEntryID(id))
	return &DiaryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DiaryEntry.
func (c *DiaryEntryClient) Delete() *DiaryEntryDelete {
	mutation := newDiaryEntryMutation(c.config, OpDelete)
	return &DiaryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiaryEntryClient) DeleteOne(_m *DiaryEntry) *DiaryEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiaryEntryClient) DeleteOneID(id uuid.UUID) *DiaryEntryDeleteOne {
	builder := c.Delete().Where(diaryentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiaryEntryDeleteOne{builder}
}

// Query returns a query builder for DiaryEntry.
func (c *DiaryEntryClient) Query() *DiaryEntryQuery {
	return &DiaryEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiaryEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a DiaryEntry entity by its id.
func (c *DiaryEntryClient) Get(ctx context.Context, id uuid.UUID) (*DiaryEntry, error) {
	return c.Query().Where(diaryentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiaryEntryClient) GetX(ctx context.Context, id uuid.UUID) *DiaryEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DiaryEntryClient) Hooks() []Hook {
	return c.hooks.DiaryEntry
}

// Interceptors returns the client interceptors.
func (c *DiaryEntryClient) Interceptors() []Interceptor {
	return c.inters.DiaryEntry
}

func (c *DiaryEntryClient) mutate(ctx context.Context, m *DiaryEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiaryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiaryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiaryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiaryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DiaryEntry mutation op: %q", m.Op())
	}
}

// GamificationAwardClient is a client for the GamificationAward schema.
type GamificationAwardClient struct {
	config
}

// NewGamificationAwardClient returns a client for the GamificationAward from the given config.
func NewGamificationAwardClient(c config) *GamificationAwardClient {
	return &GamificationAwardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gamificationaward.Hooks(f(g(h())))`.
func (c *GamificationAwardClient) Use(hooks ...Hook) {
	c.hooks.GamificationAward = append(c.hooks.GamificationAward, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gamificationaward.Intercept(f(g(h())))`.
func (c *GamificationAwardClient) Intercept(interceptors ...Interceptor) {
	c.inters.GamificationAward = append(c.inters.GamificationAward, interceptors...)
}

// Create returns a builder for creating a GamificationAward entity.
func (c *GamificationAwardClient) Create() *GamificationAwardCreate {
	mutation := newGamificationAwardMutation(c.config, OpCreate)
	return &GamificationAwardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GamificationAward entities.
func (c *GamificationAwardClient) CreateBulk(builders ...*GamificationAwardCreate) *GamificationAwardCreateBulk {
	return &GamificationAwardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GamificationAwardClient) MapCreateBulk(slice any, setFunc func(*GamificationAwardCreate, int)) *GamificationAwardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GamificationAwardCreateBulk{err: fmt.Errorf("calling to GamificationAwardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GamificationAwardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GamificationAwardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GamificationAward.
func (c *GamificationAwardClient) Update() *GamificationAwardUpdate {
	mutation := newGamificationAwardMutation(c.config, OpUpdate)
	return &GamificationAwardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GamificationAwardClient) UpdateOne(_m *GamificationAward) *GamificationAwardUpdateOne {
	mutation := newGamificationAwardMutation(c.config, OpUpdateOne, withGamificationAward(_m))
	return &GamificationAwardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GamificationAwardClient) UpdateOneID(id uuid.UUID) *GamificationAwardUpdateOne {
	mutation := newGamificationAwardMutation(c.config, OpUpdateOne, withGamificationAwardID(id))
	return &GamificationAwardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GamificationAward.
func (c *GamificationAwardClient) Delete() *GamificationAwardDelete {
	mutation := newGamificationAwardMutation(c.config, OpDelete)
	return &GamificationAwardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GamificationAwardClient) DeleteOne(_m *GamificationAward) *GamificationAwardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GamificationAwardClient) DeleteOneID(id uuid.UUID) *GamificationAwardDeleteOne {
	builder := c.Delete().Where(gamificationaward.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GamificationAwardDeleteOne{builder}
}

// Query returns a query builder for GamificationAward.
func (c *GamificationAwardClient) Query() *GamificationAwardQuery {
	return &GamificationAwardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGamificationAward},
		inters: c.Interceptors(),
	}
}

// Get returns a GamificationAward entity by its id.
func (c *GamificationAwardClient) Get(ctx context.Context, id uuid.UUID) (*GamificationAward, error) {
	return c.Query().Where(gamificationaward.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GamificationAwardClient) GetX(ctx context.Context, id uuid.UUID) *GamificationAward {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GamificationAwardClient) Hooks() []Hook {
	return c.hooks.GamificationAward
}

// Interceptors returns the client interceptors.
func (c *GamificationAwardClient) Interceptors() []Interceptor {
	return c.inters.GamificationAward
}

func (c *GamificationAwardClient) mutate(ctx context.Context, m *GamificationAwardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GamificationAwardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GamificationAwardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GamificationAwardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GamificationAwardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown GamificationAward mutation op: %q", m.Op())
	}
}

// GamificationRewardClient is a client for the GamificationReward schema.
type GamificationRewardClient struct {
	config
}

// NewGamificationRewardClient returns a client for the GamificationReward from the given config.
func NewGamificationRewardClient(c config) *GamificationRewardClient {
	return &GamificationRewardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gamificationreward.Hooks(f(g(h())))`.
func (c *GamificationRewardClient) Use(hooks ...Hook) {
	c.hooks.GamificationReward = append(c.hooks.GamificationReward, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gamificationreward.Intercept(f(g(h())))`.
func (c *GamificationRewardClient) Intercept(interceptors ...Interceptor) {
	c.inters.GamificationReward = append(c.inters.GamificationReward, interceptors...)
}

// Create returns a builder for creating a GamificationReward entity.
func (c *GamificationRewardClient) Create() *GamificationRewardCreate {
	mutation := newGamificationRewardMutation(c.config, OpCreate)
	return &GamificationRewardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GamificationReward entities.
func (c *GamificationRewardClient) CreateBulk(builders ...*GamificationRewardCreate) *GamificationRewardCreateBulk {
	return &GamificationRewardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GamificationRewardClient) MapCreateBulk(slice any, setFunc func(*GamificationRewardCreate, int)) *GamificationRewardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GamificationRewardCreateBulk{err: fmt.Errorf("calling to GamificationRewardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GamificationRewardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GamificationRewardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GamificationReward.
func (c *GamificationRewardClient) Update() *GamificationRewardUpdate {
	mutation := newGamificationRewardMutation(c.config, OpUpdate)
	return &GamificationRewardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GamificationRewardClient) UpdateOne(_m *GamificationReward) *GamificationRewardUpdateOne {
	mutation := newGamificationRewardMutation(c.config, OpUpdateOne, withGamificationReward(_m))
	return &GamificationRewardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GamificationRewardClient) UpdateOneID(id uuid.UUID) *GamificationRewardUpdateOne {
	mutation := newGamificationRewardMutation(c.config, OpUpdateOne, withGamificationRewardID(id))
	return &GamificationRewardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GamificationReward.
func (c *GamificationRewardClient) Delete() *GamificationRewardDelete {
	mutation := newGamificationRewardMutation(c.config, OpDelete)
	return &GamificationRewardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GamificationRewardClient) DeleteOne(_m *GamificationReward) *GamificationRewardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GamificationRewardClient) DeleteOneID(id uuid.UUID) *GamificationRewardDeleteOne {
	builder := c.Delete().Where(gamificationreward.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GamificationRewardDeleteOne{builder}
}

// Query returns a query builder for GamificationReward.
func (c *GamificationRewardClient) Query() *GamificationRewardQuery {
	return &GamificationRewardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGamificationReward},
		inters: c.Interceptors(),
	}
}

// Get returns a GamificationReward entity by its id.
func (c *GamificationRewardClient) Get(ctx context.Context, id uuid.UUID) (*GamificationReward, error) {
	return c.Query().Where(gamificationreward.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GamificationRewardClient) GetX(ctx context.Context, id uuid.UUID) *GamificationReward {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GamificationRewardClient) Hooks() []Hook {
	return c.hooks.GamificationReward
}

// Interceptors returns the client interceptors.
func (c *GamificationRewardClient) Interceptors() []Interceptor {
	return c.inters.GamificationReward
}

func (c *GamificationRewardClient) mutate(ctx context.Context, m *GamificationRewardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GamificationRewardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GamificationRewardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GamificationRewardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GamificationRewardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown GamificationReward mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id uuid.UUID) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id uuid.UUID) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id uuid.UUID) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Notification mutation op: %q", m.Op())
	}
}

// NotificationPrefClient is a client for the NotificationPref schema.
type NotificationPrefClient struct {
	config
}

// NewNotificationPrefClient returns a client for the NotificationPref from the given config.
func NewNotificationPrefClient(c config) *NotificationPrefClient {
	return &NotificationPrefClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notificationpref.Hooks(f(g(h())))`.
func (c *NotificationPrefClient) Use(hooks ...Hook) {
	c.hooks.NotificationPref = append(c.hooks.NotificationPref, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notificationpref.Intercept(f(g(h())))`.
func (c *NotificationPrefClient) Intercept(interceptors ...Interceptor) {
	c.inters.NotificationPref = append(c.inters.NotificationPref, interceptors...)
}

// Create returns a builder for creating a NotificationPref entity.
func (c *NotificationPrefClient) Create() *NotificationPrefCreate {
	mutation := newNotificationPrefMutation(c.config, OpCreate)
	return &NotificationPrefCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NotificationPref entities.
func (c *NotificationPrefClient) CreateBulk(builders ...*NotificationPrefCreate) *NotificationPrefCreateBulk {
	return &NotificationPrefCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationPrefClient) MapCreateBulk(slice any, setFunc func(*NotificationPrefCreate, int)) *NotificationPrefCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationPrefCreateBulk{err: fmt.Errorf("calling to NotificationPrefClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationPrefCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationPrefCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NotificationPref.
func (c *NotificationPrefClient) Update() *NotificationPrefUpdate {
	mutation := newNotificationPrefMutation(c.config, OpUpdate)
	return &NotificationPrefUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationPrefClient) UpdateOne(_m *NotificationPref) *NotificationPrefUpdateOne {
	mutation := newNotificationPrefMutation(c.config, OpUpdateOne, withNotificationPref(_m))
	return &NotificationPrefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationPrefClient) UpdateOneID(id uuid.UUID) *NotificationPrefUpdateOne {
	mutation := newNotificationPrefMutation(c.config, OpUpdateOne, withNotificationPrefID(id))
	return &NotificationPrefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NotificationPref.
func (c *NotificationPrefClient) Delete() *NotificationPrefDelete {
	mutation := newNotificationPrefMutation(c.config, OpDelete)
	return &NotificationPrefDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationPrefClient) DeleteOne(_m *NotificationPref) *NotificationPrefDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationPrefClient) DeleteOneID(id uuid.UUID) *NotificationPrefDeleteOne {
	builder := c.Delete().Where(notificationpref.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationPrefDeleteOne{builder}
}

// Query returns a query builder for NotificationPref.
func (c *NotificationPrefClient) Query() *NotificationPrefQuery {
	return &NotificationPrefQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotificationPref},
		inters: c.Interceptors(),
	}
}

// Get returns a NotificationPref entity by its id.
func (c *NotificationPrefClient) Get(ctx context.Context, id uuid.UUID) (*NotificationPref, error) {
	return c.Query().Where(notificationpref.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationPrefClient) GetX(ctx context.Context, id uuid.UUID) *NotificationPref {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationPrefClient) Hooks() []Hook {
	return c.hooks.NotificationPref
}

// Interceptors returns the client interceptors.
func (c *NotificationPrefClient) Interceptors() []Interceptor {
	return c.inters.NotificationPref
}

func (c *NotificationPrefClient) mutate(ctx context.Context, m *NotificationPrefMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationPrefCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationPrefUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationPrefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationPrefDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown NotificationPref mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClinic queries the clinic edge of a Patient.
func (c *PatientClient) QueryClinic(_m *Patient) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patient.ClinicTable, patient.ClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUser queries the user edge of a Patient.
func (c *PatientClient) QueryUser(_m *Patient) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, patient.UserTable, patient.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignedPsychologist queries the assigned_psychologist edge of a Patient.
func (c *PatientClient) QueryAssignedPsychologist(_m *Patient) *ClinicMemberQuery {
	query := (&ClinicMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(clinicmember.Table, clinicmember.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, patient.AssignedPsychologistTable, patient.AssignedPsychologistColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Patient mutation op: %q", m.Op())
	}
}

// PsychologistProfileClient is a client for the PsychologistProfile schema.
type PsychologistProfileClient struct {
	config
}

// NewPsychologistProfileClient returns a client for the PsychologistProfile from the given config.
func NewPsychologistProfileClient(c config) *PsychologistProfileClient {
	return &PsychologistProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `psychologistprofile.Hooks(f(g(h())))`.
func (c *PsychologistProfileClient) Use(hooks ...Hook) {
	c.hooks.PsychologistProfile = append(c.hooks.PsychologistProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `psychologistprofile.Intercept(f(g(h())))`.
func (c *PsychologistProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.PsychologistProfile = append(c.inters.PsychologistProfile, interceptors...)
}

// Create returns a builder for creating a PsychologistProfile entity.
func (c *PsychologistProfileClient) Create() *PsychologistProfileCreate {
	mutation := newPsychologistProfileMutation(c.config, OpCreate)
	return &PsychologistProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PsychologistProfile entities.
func (c *PsychologistProfileClient) CreateBulk(builders ...*PsychologistProfileCreate) *PsychologistProfileCreateBulk {
	return &PsychologistProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PsychologistProfileClient) MapCreateBulk(slice any, setFunc func(*PsychologistProfileCreate, int)) *PsychologistProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PsychologistProfileCreateBulk{err: fmt.Errorf("calling to PsychologistProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PsychologistProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PsychologistProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PsychologistProfile.
func (c *PsychologistProfileClient) Update() *PsychologistProfileUpdate {
	mutation := newPsychologistProfileMutation(c.config, OpUpdate)
	return &PsychologistProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PsychologistProfileClient) UpdateOne(_m *PsychologistProfile) *PsychologistProfileUpdateOne {
	mutation := newPsychologistProfileMutation(c.config, OpUpdateOne, withPsychologistProfile(_m))
	return &PsychologistProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PsychologistProfileClient) UpdateOneID(id uuid.UUID) *PsychologistProfileUpdateOne {
	mutation := newPsychologistProfileMutation(c.config, OpUpdateOne, withPsychologistProfileID(id))
	return &PsychologistProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PsychologistProfile.
func (c *PsychologistProfileClient) Delete() *PsychologistProfileDelete {
	mutation := newPsychologistProfileMutation(c.config, OpDelete)
	return &PsychologistProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PsychologistProfileClient) DeleteOne(_m *PsychologistProfile) *PsychologistProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PsychologistProfileClient) DeleteOneID(id uuid.UUID) *PsychologistProfileDeleteOne {
	builder := c.Delete().Where(psychologistprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PsychologistProfileDeleteOne{builder}
}

// Query returns a query builder for PsychologistProfile.
func (c *PsychologistProfileClient) Query() *PsychologistProfileQuery {
	return &PsychologistProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePsychologistProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a PsychologistProfile entity by its id.
func (c *PsychologistProfileClient) Get(ctx context.Context, id uuid.UUID) (*PsychologistProfile, error) {
	return c.Query().Where(psychologistprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PsychologistProfileClient) GetX(ctx context.Context, id uuid.UUID) *PsychologistProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMember queries the member edge of a PsychologistProfile.
func (c *PsychologistProfileClient) QueryMember(_m *PsychologistProfile) *ClinicMemberQuery {
	query := (&ClinicMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(psychologistprofile.Table, psychologistprofile.FieldID, id),
			sqlgraph.To(clinicmember.Table, clinicmember.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, psychologistprofile.MemberTable, psychologistprofile.MemberColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PsychologistProfileClient) Hooks() []Hook {
	return c.hooks.PsychologistProfile
}

// Interceptors returns the client interceptors.
func (c *PsychologistProfileClient) Interceptors() []Interceptor {
	return c.inters.PsychologistProfile
}

func (c *PsychologistProfileClient) mutate(ctx context.Context, m *PsychologistProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PsychologistProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PsychologistProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PsychologistProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PsychologistProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PsychologistProfile mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id uuid.UUID) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id uuid.UUID) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id uuid.UUID) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Session mutation op: %q", m.Op())
	}
}

// UnavailabilityClient is a client for the Unavailability schema.
type UnavailabilityClient struct {
	config
}

// NewUnavailabilityClient returns a client for the Unavailability from the given config.
func NewUnavailabilityClient(c config) *UnavailabilityClient {
	return &UnavailabilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unavailability.Hooks(f(g(h())))`.
func (c *UnavailabilityClient) Use(hooks ...Hook) {
	c.hooks.Unavailability = append(c.hooks.Unavailability, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unavailability.Intercept(f(g(h())))`.
func (c *UnavailabilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Unavailability = append(c.inters.Unavailability, interceptors...)
}

// Create returns a builder for creating a Unavailability entity.
func (c *UnavailabilityClient) Create() *UnavailabilityCreate {
	mutation := newUnavailabilityMutation(c.config, OpCreate)
	return &UnavailabilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Unavailability entities.
func (c *UnavailabilityClient) CreateBulk(builders ...*UnavailabilityCreate) *UnavailabilityCreateBulk {
	return &UnavailabilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnavailabilityClient) MapCreateBulk(slice any, setFunc func(*UnavailabilityCreate, int)) *UnavailabilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnavailabilityCreateBulk{err: fmt.Errorf("calling to UnavailabilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnavailabilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnavailabilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Unavailability.
func (c *UnavailabilityClient) Update() *UnavailabilityUpdate {
	mutation := newUnavailabilityMutation(c.config, OpUpdate)
	return &UnavailabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnavailabilityClient) UpdateOne(_m *Unavailability) *UnavailabilityUpdateOne {
	mutation := newUnavailabilityMutation(c.config, OpUpdateOne, withUnavailability(_m))
	return &UnavailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnavailabilityClient) UpdateOneID(id uuid.UUID) *UnavailabilityUpdateOne {
	mutation := newUnavailabilityMutation(c.config, OpUpdateOne, withUnavailabilityID(id))
	return &UnavailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Unavailability.
func (c *UnavailabilityClient) Delete() *UnavailabilityDelete {
	mutation := newUnavailabilityMutation(c.config, OpDelete)
	return &UnavailabilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnavailabilityClient) DeleteOne(_m *Unavailability) *UnavailabilityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnavailabilityClient) DeleteOneID(id uuid.UUID) *UnavailabilityDeleteOne {
	builder := c.Delete().Where(unavailability.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnavailabilityDeleteOne{builder}
}

// Query returns a query builder for Unavailability.
func (c *UnavailabilityClient) Query() *UnavailabilityQuery {
	return &UnavailabilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnavailability},
		inters: c.Interceptors(),
	}
}

// Get returns a Unavailability entity by its id.
func (c *UnavailabilityClient) Get(ctx context.Context, id uuid.UUID) (*Unavailability, error) {
	return c.Query().Where(unavailability.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnavailabilityClient) GetX(ctx context.Context, id uuid.UUID) *Unavailability {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UnavailabilityClient) Hooks() []Hook {
	return c.hooks.Unavailability
}

// Interceptors returns the client interceptors.
func (c *UnavailabilityClient) Interceptors() []Interceptor {
	return c.inters.Unavailability
}

func (c *UnavailabilityClient) mutate(ctx context.Context, m *UnavailabilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnavailabilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnavailabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnavailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnavailabilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Unavailability mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// UserDeviceClient is a client for the UserDevice schema.
type UserDeviceClient struct {
	config
}

// NewUserDeviceClient returns a client for the UserDevice from the given config.
func NewUserDeviceClient(c config) *UserDeviceClient {
	return &UserDeviceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userdevice.Hooks(f(g(h())))`.
func (c *UserDeviceClient) Use(hooks ...Hook) {
	c.hooks.UserDevice = append(c.hooks.UserDevice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userdevice.Intercept(f(g(h())))`.
func (c *UserDeviceClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserDevice = append(c.inters.UserDevice, interceptors...)
}

// Create returns a builder for creating a UserDevice entity.
func (c *UserDeviceClient) Create() *UserDeviceCreate {
	mutation := newUserDeviceMutation(c.config, OpCreate)
	return &UserDeviceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserDevice entities.
func (c *UserDeviceClient) CreateBulk(builders ...*UserDeviceCreate) *UserDeviceCreateBulk {
	return &UserDeviceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserDeviceClient) MapCreateBulk(slice any, setFunc func(*UserDeviceCreate, int)) *UserDeviceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserDeviceCreateBulk{err: fmt.Errorf("calling to UserDeviceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserDeviceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserDeviceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserDevice.
func (c *UserDeviceClient) Update() *UserDeviceUpdate {
	mutation := newUserDeviceMutation(c.config, OpUpdate)
	return &UserDeviceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserDeviceClient) UpdateOne(_m *UserDevice) *UserDeviceUpdateOne {
	mutation := newUserDeviceMutation(c.config, OpUpdateOne, withUserDevice(_m))
	return &UserDeviceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserDeviceClient) UpdateOneID(id uuid.UUID) *UserDeviceUpdateOne {
	mutation := newUserDeviceMutation(c.config, OpUpdateOne, withUserDeviceID(id))
	return &UserDeviceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserDevice.
func (c *UserDeviceClient) Delete() *UserDeviceDelete {
	mutation := newUserDeviceMutation(c.config, OpDelete)
	return &UserDeviceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserDeviceClient) DeleteOne(_m *UserDevice) *UserDeviceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserDeviceClient) DeleteOneID(id uuid.UUID) *UserDeviceDeleteOne {
	builder := c.Delete().Where(userdevice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeviceDeleteOne{builder}
}

// Query returns a query builder for UserDevice.
func (c *UserDeviceClient) Query() *UserDeviceQuery {
	return &UserDeviceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserDevice},
		inters: c.Interceptors(),
	}
}

// Get returns a UserDevice entity by its id.
func (c *UserDeviceClient) Get(ctx context.Context, id uuid.UUID) (*UserDevice, error) {
	return c.Query().Where(userdevice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserDeviceClient) GetX(ctx context.Context, id uuid.UUID) *UserDevice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserDeviceClient) Hooks() []Hook {
	return c.hooks.UserDevice
}

// Interceptors returns the client interceptors.
func (c *UserDeviceClient) Interceptors() []Interceptor {
	return c.inters.UserDevice
}

func (c *UserDeviceClient) mutate(ctx context.Context, m *UserDeviceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserDeviceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserDeviceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserDeviceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDeviceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserDevice mutation op: %q", m.Op())
	}
}

// UserProgressClient is a client for the UserProgress schema.
type UserProgressClient struct {
	config
}

// NewUserProgressClient returns a client for the UserProgress from the given config.
func NewUserProgressClient(c config) *UserProgressClient {
	return &UserProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprogress.Hooks(f(g(h())))`.
func (c *UserProgressClient) Use(hooks ...Hook) {
	c.hooks.UserProgress = append(c.hooks.UserProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprogress.Intercept(f(g(h())))`.
func (c *UserProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProgress = append(c.inters.UserProgress, interceptors...)
}

// Create returns a builder for creating a UserProgress entity.
func (c *UserProgressClient) Create() *UserProgressCreate {
	mutation := newUserProgressMutation(c.config, OpCreate)
	return &UserProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProgress entities.
func (c *UserProgressClient) CreateBulk(builders ...*UserProgressCreate) *UserProgressCreateBulk {
	return &UserProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProgressClient) MapCreateBulk(slice any, setFunc func(*UserProgressCreate, int)) *UserProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProgressCreateBulk{err: fmt.Errorf("calling to UserProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProgress.
func (c *UserProgressClient) Update() *UserProgressUpdate {
	mutation := newUserProgressMutation(c.config, OpUpdate)
	return &UserProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProgressClient) UpdateOne(_m *UserProgress) *UserProgressUpdateOne {
	mutation := newUserProgressMutation(c.config, OpUpdateOne, withUserProgress(_m))
	return &UserProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProgressClient) UpdateOneID(id uuid.UUID) *UserProgressUpdateOne {
	mutation := newUserProgressMutation(c.config, OpUpdateOne, withUserProgressID(id))
	return &UserProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProgress.
func (c *UserProgressClient) Delete() *UserProgressDelete {
	mutation := newUserProgressMutation(c.config, OpDelete)
	return &UserProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProgressClient) DeleteOne(_m *UserProgress) *UserProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProgressClient) DeleteOneID(id uuid.UUID) *UserProgressDeleteOne {
	builder := c.Delete().Where(userprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProgressDeleteOne{builder}
}

// Query returns a query builder for UserProgress.
func (c *UserProgressClient) Query() *UserProgressQuery {
	return &UserProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProgress entity by its id.
func (c *UserProgressClient) Get(ctx context.Context, id uuid.UUID) (*UserProgress, error) {
	return c.Query().Where(userprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProgressClient) GetX(ctx context.Context, id uuid.UUID) *UserProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserProgressClient) Hooks() []Hook {
	return c.hooks.UserProgress
}

// Interceptors returns the client interceptors.
func (c *UserProgressClient) Interceptors() []Interceptor {
	return c.inters.UserProgress
}

func (c *UserProgressClient) mutate(ctx context.Context, m *UserProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserProgress mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id uuid.UUID) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id uuid.UUID) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id uuid.UUID) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id uuid.UUID) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserSession.
func (c *UserSessionClient) QueryUser(_m *UserSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usersession.Table, usersession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, usersession.UserTable, usersession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CareLink, Clinic, ClinicMember, ClinicPermission, ClinicSettings, DiaryEntry,
		GamificationAward, GamificationReward, Notification, NotificationPref, Patient,
		PsychologistProfile, Session, Unavailability, User, UserDevice, UserProgress,
		UserSession []ent.Hook
	}
	inters struct {
		CareLink, Clinic, ClinicMember, ClinicPermission, ClinicSettings, DiaryEntry,
		GamificationAward, GamificationReward, Notification, NotificationPref, Patient,
		PsychologistProfile, Session, Unavailability, User, UserDevice, UserProgress,
		UserSession []ent.Interceptor
	}
)
