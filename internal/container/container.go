package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/skatetube/config"
	repo "github.com/oksasatya/skatetube/internal/domain/repository"
	"github.com/oksasatya/skatetube/internal/infrastructure/youtube"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	esClient    *elasticsearch.Client
	ytClient    *youtube.Client

	users     repo.UserRepository
	sessions  repo.SessionStore
	feedCache repo.FeedCache
)

func SetConfig(c *config.Config)      { cfg = c }
func GetConfig() *config.Config       { return cfg }
func SetLogger(l *logrus.Logger)      { logger = l }
func GetLogger() *logrus.Logger       { return logger }
func SetRedis(r *redis.Client)        { redisClient = r }
func GetRedis() *redis.Client         { return redisClient }
func SetES(c *elasticsearch.Client)   { esClient = c }
func GetES() *elasticsearch.Client    { return esClient }
func SetYouTube(c *youtube.Client)    { ytClient = c }
func GetYouTube() *youtube.Client     { return ytClient }
func SetUsers(r repo.UserRepository)  { users = r }
func GetUsers() repo.UserRepository   { return users }
func SetSessions(s repo.SessionStore) { sessions = s }
func GetSessions() repo.SessionStore  { return sessions }
func SetFeedCache(c repo.FeedCache)   { feedCache = c }
func GetFeedCache() repo.FeedCache    { return feedCache }
