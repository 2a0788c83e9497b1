package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS users (
	  id CHAR(36) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  password_hash VARCHAR(255) NOT NULL,
	  role VARCHAR(32) NOT NULL DEFAULT 'admin',
	  full_name VARCHAR(255) NOT NULL DEFAULT '',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS sessions (
	  id CHAR(36) NOT NULL,
	  user_id CHAR(36) NOT NULL,
	  token_hash BINARY(32) NOT NULL,
	  expires_at DATETIME(3) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  last_seen_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_sessions_user_id (user_id),
	  UNIQUE KEY ux_sessions_token_hash (token_hash),
	  CONSTRAINT fk_sessions_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS admin_profiles (
	  id CHAR(36) NOT NULL,
	  user_id CHAR(36) NOT NULL,
	  full_name VARCHAR(255) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  title VARCHAR(255) NULL,
	  bio TEXT NULL,
	  location VARCHAR(255) NULL,
	  phone VARCHAR(64) NULL,
	  github_url VARCHAR(512) NULL,
	  linkedin_url VARCHAR(512) NULL,
	  profile_image_url VARCHAR(512) NULL,
	  resume_url VARCHAR(512) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_admin_profiles_user_id (user_id),
	  CONSTRAINT fk_admin_profiles_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS skills (
	  id CHAR(36) NOT NULL,
	  admin_id CHAR(36) NOT NULL,
	  skill_name VARCHAR(255) NOT NULL,
	  category VARCHAR(64) NULL,
	  proficiency_level INT NOT NULL DEFAULT 3,
	  order_index INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_skills_admin_id (admin_id),
	  CONSTRAINT fk_skills_admin FOREIGN KEY (admin_id) REFERENCES admin_profiles(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS education (
	  id CHAR(36) NOT NULL,
	  admin_id CHAR(36) NOT NULL,
	  institution_name VARCHAR(255) NOT NULL,
	  degree VARCHAR(255) NOT NULL,
	  field_of_study VARCHAR(255) NULL,
	  grade VARCHAR(64) NULL,
	  start_date DATE NOT NULL,
	  end_date DATE NULL,
	  description TEXT NULL,
	  order_index INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_education_admin_id (admin_id),
	  CONSTRAINT fk_education_admin FOREIGN KEY (admin_id) REFERENCES admin_profiles(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS work_experiences (
	  id CHAR(36) NOT NULL,
	  admin_id CHAR(36) NOT NULL,
	  company_name VARCHAR(255) NOT NULL,
	  position VARCHAR(255) NOT NULL,
	  location VARCHAR(255) NULL,
	  start_date DATE NOT NULL,
	  end_date DATE NULL,
	  is_current TINYINT(1) NOT NULL DEFAULT 0,
	  description TEXT NULL,
	  technologies JSON NULL,
	  order_index INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_work_experiences_admin_id (admin_id),
	  CONSTRAINT fk_work_experiences_admin FOREIGN KEY (admin_id) REFERENCES admin_profiles(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS portfolio_projects (
	  id CHAR(36) NOT NULL,
	  admin_id CHAR(36) NOT NULL,
	  title VARCHAR(255) NOT NULL,
	  description TEXT NOT NULL,
	  image_url VARCHAR(512) NULL,
	  demo_link VARCHAR(512) NULL,
	  repo_link VARCHAR(512) NULL,
	  technologies JSON NULL,
	  status VARCHAR(32) NOT NULL DEFAULT 'completed',
	  featured TINYINT(1) NOT NULL DEFAULT 0,
	  start_date DATE NULL,
	  end_date DATE NULL,
	  order_index INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_portfolio_projects_admin_id (admin_id),
	  CONSTRAINT fk_portfolio_projects_admin FOREIGN KEY (admin_id) REFERENCES admin_profiles(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS media_gallery (
	  id CHAR(36) NOT NULL,
	  admin_id CHAR(36) NOT NULL,
	  title VARCHAR(255) NOT NULL,
	  description TEXT NULL,
	  media_url VARCHAR(512) NOT NULL,
	  media_type VARCHAR(32) NOT NULL DEFAULT 'image',
	  thumbnail_url VARCHAR(512) NULL,
	  tags JSON NULL,
	  featured TINYINT(1) NOT NULL DEFAULT 0,
	  order_index INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_media_gallery_admin_id (admin_id),
	  CONSTRAINT fk_media_gallery_admin FOREIGN KEY (admin_id) REFERENCES admin_profiles(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS testimonials (
	  id CHAR(36) NOT NULL,
	  admin_id CHAR(36) NOT NULL,
	  client_name VARCHAR(255) NOT NULL,
	  client_title VARCHAR(255) NULL,
	  client_company VARCHAR(255) NULL,
	  testimonial_text TEXT NOT NULL,
	  rating INT NOT NULL DEFAULT 5,
	  client_image_url VARCHAR(512) NULL,
	  featured TINYINT(1) NOT NULL DEFAULT 0,
	  order_index INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_testimonials_admin_id (admin_id),
	  CONSTRAINT fk_testimonials_admin FOREIGN KEY (admin_id) REFERENCES admin_profiles(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS certificates (
	  id CHAR(36) NOT NULL,
	  admin_id CHAR(36) NOT NULL,
	  certificate_name VARCHAR(255) NOT NULL,
	  issuing_organization VARCHAR(255) NOT NULL,
	  issue_date DATE NOT NULL,
	  expiry_date DATE NULL,
	  credential_id VARCHAR(255) NULL,
	  credential_url VARCHAR(512) NULL,
	  certificate_image_url VARCHAR(512) NULL,
	  description TEXT NULL,
	  skills_demonstrated JSON NULL,
	  featured TINYINT(1) NOT NULL DEFAULT 0,
	  order_index INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_certificates_admin_id (admin_id),
	  CONSTRAINT fk_certificates_admin FOREIGN KEY (admin_id) REFERENCES admin_profiles(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS contact_messages (
	  id CHAR(36) NOT NULL,
	  first_name VARCHAR(100) NOT NULL,
	  last_name VARCHAR(100) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  subject VARCHAR(200) NOT NULL,
	  message TEXT NOT NULL,
	  status VARCHAR(16) NOT NULL DEFAULT 'unread',
	  responded_at DATETIME(3) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_contact_messages_status (status),
	  KEY ix_contact_messages_created_at (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if _, err := sqlDB.Exec(sql); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("All tables created.")
}
